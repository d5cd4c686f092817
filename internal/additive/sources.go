package additive

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gorm.io/gorm"

	"github.com/pageza/labellens/backend/internal/models"
)

//go:embed data/additives.json
var embeddedDataset []byte

// DecodeRecords parses a JSON array of records.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode additive dataset: %w", err)
	}
	return records, nil
}

// EmbeddedSource serves the dataset compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Load(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(embeddedDataset, &records); err != nil {
		return nil, fmt.Errorf("decode embedded dataset: %w", err)
	}
	return records, nil
}

// EmbeddedCatalog builds a snapshot from the compiled-in dataset.
func EmbeddedCatalog() (*Catalog, error) {
	records, err := EmbeddedSource{}.Load(context.Background())
	if err != nil {
		return nil, err
	}
	return NewCatalog(records, "embedded")
}

// FileSource reads a JSON dataset from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Load(ctx context.Context) ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeRecords(f)
}

// GormSource reads the additives table.
type GormSource struct {
	DB *gorm.DB
}

func (s GormSource) Name() string { return "database" }

func (s GormSource) Load(ctx context.Context) ([]Record, error) {
	var rows []models.Additive
	if err := s.DB.WithContext(ctx).Order("sort_order ASC").Order("code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(rows))
	for i := range rows {
		records = append(records, RecordFromModel(&rows[i]))
	}
	return records, nil
}

// RecordFromModel converts a stored row into a Record.
func RecordFromModel(m *models.Additive) Record {
	return Record{
		Code:            m.Code,
		Name:            m.Name,
		Category:        m.Category,
		Tier:            m.RiskLevel,
		Synonyms:        append([]string(nil), m.Synonyms...),
		PenaltyOverride: m.PenaltyOverride,
		GroupWarnings:   m.Warnings(),
		Description:     m.Description,
	}
}

// ModelFromRecord is the inverse of RecordFromModel. order keeps the dataset
// order stable across reloads from the database.
func ModelFromRecord(r Record, order int) models.Additive {
	warnings := make(map[string]interface{}, len(r.GroupWarnings))
	for k, v := range r.GroupWarnings {
		warnings[k] = v
	}
	synonyms := models.JSONBStringArray(append([]string{}, r.Synonyms...))
	return models.Additive{
		Code:            r.Code,
		Name:            r.Name,
		Category:        r.Category,
		RiskLevel:       r.Tier,
		Synonyms:        synonyms,
		PenaltyOverride: r.PenaltyOverride,
		GroupWarnings:   warnings,
		Description:     r.Description,
		SortOrder:       order,
	}
}

// S3GetObjectAPI is the slice of the S3 client the loader needs.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a JSON dataset from an object in a bucket.
type S3Source struct {
	Client S3GetObjectAPI
	Bucket string
	Key    string
}

func (s S3Source) Name() string { return "s3://" + s.Bucket + "/" + s.Key }

func (s S3Source) Load(ctx context.Context) ([]Record, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return DecodeRecords(out.Body)
}
