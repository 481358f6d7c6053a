package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseHexRejectsMalformedID(t *testing.T) {
	for _, value := range []string{"", "abc", "zzzzzzzzzzzzzzzzzzzzzzzz", "674a2609f03d766411a9308"} {
		if _, err := ParseHex(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestParseHexAcceptsTransportForm(t *testing.T) {
	id, err := ParseHex(" 674a2609f03d766411a9308b ")
	if err != nil {
		t.Fatalf("ParseHex returned error: %v", err)
	}
	if id.Hex() != "674a2609f03d766411a9308b" {
		t.Fatalf("unexpected id %s", id.Hex())
	}
}

func TestHexIDDecodesBothFieldRevisions(t *testing.T) {
	oid := primitive.NewObjectID()

	asObjectID, err := bson.Marshal(bson.M{"shoeId": oid, "tagAddress": "6C:FD:22:76:01:02"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var fromObjectID Tag
	if err := bson.Unmarshal(asObjectID, &fromObjectID); err != nil {
		t.Fatalf("unmarshal ObjectId form failed: %v", err)
	}
	if fromObjectID.ShoeID.String() != oid.Hex() {
		t.Fatalf("expected %s, got %s", oid.Hex(), fromObjectID.ShoeID)
	}

	asString, err := bson.Marshal(bson.M{"shoeId": oid.Hex(), "tagAddress": "6C:FD:22:76:01:02"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var fromString Tag
	if err := bson.Unmarshal(asString, &fromString); err != nil {
		t.Fatalf("unmarshal string form failed: %v", err)
	}
	if fromString.ShoeID.String() != oid.Hex() {
		t.Fatalf("expected %s, got %s", oid.Hex(), fromString.ShoeID)
	}
}

func TestObjectIDListAcceptsImportedStringEntries(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	raw, err := bson.Marshal(bson.M{"colors": bson.A{first, second.Hex(), "not-an-id"}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var shoe Shoe
	if err := bson.Unmarshal(raw, &shoe); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(shoe.Colors) != 2 {
		t.Fatalf("expected 2 decodable entries, got %d", len(shoe.Colors))
	}
	if shoe.Colors[0] != first || shoe.Colors[1] != second {
		t.Fatalf("unexpected ids %v", shoe.Colors)
	}
}

func TestPinterestLinksLegacyShoeField(t *testing.T) {
	oid := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.M{"Shoe": oid, "links": bson.A{"https://cdn.test/a.jpg"}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc PinterestLinks
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if doc.Shoe() != oid {
		t.Fatalf("expected legacy Shoe field to resolve, got %s", doc.Shoe().Hex())
	}
}
