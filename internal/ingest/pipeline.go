// Package ingest runs the board-media ingestion pipeline: fetch a shoe's
// pinterest board, stage the images locally, upload them to the object store
// and record the resulting URLs on the shoe's pinterest document.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"backend/internal/catalog"
	"backend/internal/models"
	"backend/internal/objectstore"
	"backend/internal/pinterest"
	"backend/internal/store"
)

// PinSource fetches the media items of one board.
type PinSource interface {
	BoardPins(ctx context.Context, boardID string) ([]pinterest.Pin, error)
}

// UpstreamError marks a whole-run failure of an external system (media
// source or object store). Handlers translate it to a 500 response carrying
// the underlying cause.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Pipeline wires the three external systems the ingestion run touches.
type Pipeline struct {
	store       store.Store
	objects     objectstore.Store
	pins        PinSource
	http        *http.Client
	keyPrefix   string
	stagingRoot string
}

// NewPipeline builds a pipeline. stagingRoot may be empty to stage under the
// system temp directory.
func NewPipeline(st store.Store, objects objectstore.Store, pins PinSource, httpClient *http.Client, keyPrefix string) *Pipeline {
	return &Pipeline{
		store:     st,
		objects:   objects,
		pins:      pins,
		http:      httpClient,
		keyPrefix: strings.Trim(keyPrefix, "/"),
	}
}

// Result reports what one ingestion run recorded.
type Result struct {
	ShoeID  string   `json:"shoeId"`
	BoardID string   `json:"boardId"`
	Links   []string `json:"links"`
}

// Run ingests the board media for one shoe. The shoe is resolved by the
// lookup; its board id is taken from the shoe document unless boardOverride
// is given. Per-item download/upload failures degrade the result set; a
// whole-board fetch failure aborts the run. The staging directory is removed
// on every exit path.
func (p *Pipeline) Run(ctx context.Context, lookup catalog.Lookup, boardOverride string) (Result, error) {
	filter, err := lookup.Filter()
	if err != nil {
		return Result{}, err
	}

	var shoe models.Shoe
	if err := p.store.FindOne(ctx, "shoes", filter, &shoe); err != nil {
		return Result{}, err
	}

	boardID := strings.TrimSpace(boardOverride)
	if boardID == "" {
		boardID = strings.TrimSpace(shoe.PinterestBoardID)
	}
	if boardID == "" {
		return Result{}, fmt.Errorf("%w: shoe %s has no pinterest board", catalog.ErrBadRequest, shoe.ID.Hex())
	}

	staging, err := os.MkdirTemp(p.stagingRoot, "pinterest-staging-*")
	if err != nil {
		return Result{}, fmt.Errorf("create staging directory: %w", err)
	}
	defer p.cleanupStaging(staging)

	pins, err := p.pins.BoardPins(ctx, boardID)
	if err != nil {
		return Result{}, &UpstreamError{Op: "fetch board " + boardID, Err: err}
	}

	staged := p.stagePins(ctx, staging, shoe, pins)
	links := p.uploadStaged(ctx, folderName(shoe), staged)

	update := bson.M{"$set": bson.M{"shoeId": shoe.ID, "links": links}}
	if _, err := p.store.UpdateOne(ctx, "pinterest", bson.M{"shoeId": shoe.ID}, update, true); err != nil {
		return Result{}, err
	}

	logrus.WithFields(logrus.Fields{
		"shoeId":  shoe.ID.Hex(),
		"boardId": boardID,
		"links":   len(links),
	}).Info("pinterest ingestion complete")

	return Result{ShoeID: shoe.ID.Hex(), BoardID: boardID, Links: links}, nil
}

// stagePins downloads each pin image into the staging directory. Pins
// without an image URL and failed downloads are skipped, not fatal.
func (p *Pipeline) stagePins(ctx context.Context, staging string, shoe models.Shoe, pins []pinterest.Pin) []string {
	staged := make([]string, 0, len(pins))
	for idx, pin := range pins {
		if pin.ImageURL == "" {
			logrus.WithFields(logrus.Fields{"pin": pin.ID, "shoeId": shoe.ID.Hex()}).
				Warn("pin has no image, skipping")
			continue
		}

		dest := filepath.Join(staging, fmt.Sprintf("%s-%d.jpg", shoe.ID.Hex(), idx))
		if err := p.download(ctx, pin.ImageURL, dest); err != nil {
			logrus.WithFields(logrus.Fields{"pin": pin.ID, "url": pin.ImageURL}).
				WithError(err).Error("pin download failed, skipping")
			continue
		}
		staged = append(staged, dest)
	}
	return staged
}

// uploadStaged pushes each staged file to the object store and collects the
// durable URLs. A failed upload drops that file from the result set only.
func (p *Pipeline) uploadStaged(ctx context.Context, folder string, staged []string) []string {
	links := make([]string, 0, len(staged))
	for _, file := range staged {
		key := path.Join(p.keyPrefix, folder, filepath.Base(file))

		url, err := p.uploadFile(ctx, key, file)
		if err != nil {
			logrus.WithFields(logrus.Fields{"file": file, "key": key}).
				WithError(err).Error("upload failed, skipping")
			continue
		}
		links = append(links, url)
	}
	return links
}

func (p *Pipeline) uploadFile(ctx context.Context, key, file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return p.objects.Put(ctx, key, f, "image/jpeg")
}

func (p *Pipeline) download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return err
	}
	return nil
}

// cleanupStaging removes every staged file and then the directory itself.
// Removal failures are logged, never escalated to the caller.
func (p *Pipeline) cleanupStaging(staging string) {
	entries, err := os.ReadDir(staging)
	if err != nil {
		logrus.WithField("dir", staging).WithError(err).Error("staging cleanup: read failed")
	} else {
		for _, entry := range entries {
			file := filepath.Join(staging, entry.Name())
			if err := os.Remove(file); err != nil {
				logrus.WithField("file", file).WithError(err).Error("staging cleanup: remove failed")
			}
		}
	}

	if err := os.Remove(staging); err != nil {
		logrus.WithField("dir", staging).WithError(err).Error("staging cleanup: directory remove failed")
	}
}

// folderName derives the object-store folder from the shoe model, in the
// UPPER_SNAKE form the bucket already uses (e.g. "Samba OG" -> "SAMBA_OG").
func folderName(shoe models.Shoe) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(shoe.Model))
	cleaned = strings.Trim(cleaned, "_")
	for strings.Contains(cleaned, "__") {
		cleaned = strings.ReplaceAll(cleaned, "__", "_")
	}
	if cleaned == "" {
		return shoe.ID.Hex()
	}
	return cleaned
}
