package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"blog-api/core/storage"
	"blog-api/core/store"
	"blog-api/core/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Snapshot is the serialized form of a full table dump.
type Snapshot struct {
	TakenAt string                      `json:"takenAt"`
	Tables  map[string][]map[string]any `json:"tables"`
}

// tableQueries lists the dumped tables with their full statements, so no
// statement text is ever assembled at runtime.
var tableQueries = []struct {
	Table string
	Query string
}{
	{"posts", "select * from posts"},
	{"comments", "select * from comments"},
	{"users", "select * from users"},
}

// Run dumps all resource tables and uploads the snapshot. It returns the
// object name the snapshot was written to.
func Run(ctx context.Context, st store.Adapter, client storage.Client, bucket string, logger *zap.Logger) (string, error) {
	snap := Snapshot{
		TakenAt: utils.Now(),
		Tables:  make(map[string][]map[string]any, len(tableQueries)),
	}

	for _, tq := range tableQueries {
		rows, err := st.Query(ctx, tq.Query)
		if err != nil {
			return "", fmt.Errorf("failed to dump table %s: %w", tq.Table, err)
		}
		normalizeTimestamps(rows)
		snap.Tables[tq.Table] = rows
		logger.Info("Dumped table", zap.String("table", tq.Table), zap.Int("rows", len(rows)))
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	object := fmt.Sprintf("backups/%s.json", time.Now().UTC().Format("20060102-150405"))
	_, err = client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}

	logger.Info("Snapshot uploaded", zap.String("bucket", bucket), zap.String("object", object))
	return object, nil
}

// normalizeTimestamps rewrites time.Time row values into the storage layout so
// the snapshot matches the API's wire format.
func normalizeTimestamps(rows []map[string]any) {
	for _, row := range rows {
		for _, col := range []string{"createdAt", "updatedAt"} {
			if v, ok := row[col]; ok {
				row[col] = utils.ToTimeString(v)
			}
		}
	}
}
