package models

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseHex validates the 24-character hex transport form of a document id
// and converts it to the store's native identifier type.
func ParseHex(value string) (primitive.ObjectID, error) {
	trimmed := strings.TrimSpace(value)
	id, err := primitive.ObjectIDFromHex(trimmed)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q: %w", value, err)
	}
	return id, nil
}

// HexID is a shoe reference that decodes whether the document stored it as an
// ObjectId or as a plain hex string. It always compares and renders in the
// transport (hex string) form.
type HexID string

// UnmarshalBSONValue accepts both ObjectId and string BSON types, allowing
// documents from either schema revision to be decoded without failing the
// entire request.
func (h *HexID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null:
		*h = ""
		return nil
	case bsontype.ObjectID:
		var id primitive.ObjectID
		if err := bson.UnmarshalValue(t, data, &id); err != nil {
			return err
		}
		*h = HexID(id.Hex())
		return nil
	case bsontype.String:
		var value string
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		*h = HexID(strings.TrimSpace(value))
		return nil
	default:
		return fmt.Errorf("cannot decode %s into HexID", t)
	}
}

// MarshalBSONValue stores the reference as an ObjectId when it is a valid hex
// token, keeping new writes consistent with the shoes collection.
func (h HexID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if id, err := primitive.ObjectIDFromHex(string(h)); err == nil {
		return bson.MarshalValue(id)
	}
	return bson.MarshalValue(string(h))
}

func (h HexID) String() string {
	return string(h)
}

// ObjectIDList decodes reference arrays whose entries may be ObjectIds or
// hex strings left over from JSON imports. Entries that are neither are
// dropped rather than failing the document.
type ObjectIDList []primitive.ObjectID

func (l *ObjectIDList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null:
		*l = nil
		return nil
	case bsontype.Array:
		var raw bson.A
		if err := bson.UnmarshalValue(t, data, &raw); err != nil {
			return err
		}
		ids := make(ObjectIDList, 0, len(raw))
		for _, entry := range raw {
			switch typed := entry.(type) {
			case primitive.ObjectID:
				ids = append(ids, typed)
			case string:
				if id, err := primitive.ObjectIDFromHex(strings.TrimSpace(typed)); err == nil {
					ids = append(ids, id)
				}
			}
		}
		*l = ids
		return nil
	default:
		return fmt.Errorf("cannot decode %s into ObjectIDList", t)
	}
}

func (l ObjectIDList) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue([]primitive.ObjectID(l))
}
