package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// ActivityEmbedding indexes activities from saved trips for interest-based
// recommendations. One row per distinct activity name.
type ActivityEmbedding struct {
	ActivityName string          `gorm:"primaryKey;column:activity_name"`
	Description  string
	City         string
	Tags         pq.StringArray  `gorm:"type:text[]"`
	Embedding    pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
}
