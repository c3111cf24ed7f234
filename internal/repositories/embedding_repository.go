package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tripflow/internal/models/db_models"
)

// ActivityMatch is one similarity hit from the embedding index.
type ActivityMatch struct {
	db_models.ActivityEmbedding
	Similarity float64
}

type EmbeddingRepository interface {
	Upsert(embedding db_models.ActivityEmbedding) error
	SearchByVector(vector pgvector.Vector) ([]ActivityMatch, error)
}

type embeddingRepository struct {
	db *gorm.DB
}

func NewEmbeddingRepository(db *gorm.DB) EmbeddingRepository {
	return &embeddingRepository{db: db}
}

func (r *embeddingRepository) Upsert(embedding db_models.ActivityEmbedding) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "activity_name"}},
		UpdateAll: true,
	}).Create(&embedding).Error
}

func (r *embeddingRepository) SearchByVector(vector pgvector.Vector) ([]ActivityMatch, error) {
	var results []ActivityMatch

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM activity_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT 15
    `

	if err := r.db.Raw(query, vecStr).Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
