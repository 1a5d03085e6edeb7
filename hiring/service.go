package hiring

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"simplehr.com/simplehr/core/models"
)

// StageBucket is the set of candidates currently in one stage.
type StageBucket struct {
	Stage      Stage
	Candidates []models.Candidate
}

// Create inserts c in the APPLIED stage whatever stage the caller set.
func Create(db *gorm.DB, c *models.Candidate) error {
	c.FullName = strings.TrimSpace(c.FullName)
	if c.FullName == "" {
		return ErrInvalidName
	}
	c.ID = 0
	c.Stage = string(StageApplied)
	if err := db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

func Get(db *gorm.DB, id uint) (*models.Candidate, error) {
	var c models.Candidate
	err := db.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate %d: %w", id, err)
	}
	return &c, nil
}

// RequestTransition moves the candidate to requested when the table allows
// it. Disallowed requests leave the candidate untouched and report false
// without an error.
func RequestTransition(db *gorm.DB, id uint, requested Stage) (bool, error) {
	c, err := Get(db, id)
	if err != nil {
		return false, err
	}
	if !CanTransition(Stage(c.Stage), requested) {
		return false, nil
	}

	// guard on the stage we read so a concurrent move is not overwritten
	res := db.Model(&models.Candidate{}).
		Where("id = ? AND stage = ?", c.ID, c.Stage).
		Update("stage", string(requested))
	if res.Error != nil {
		return false, fmt.Errorf("failed to update candidate %d: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ListByStage returns one bucket per stage in pipeline order.
func ListByStage(db *gorm.DB) ([]StageBucket, error) {
	var candidates []models.Candidate
	if err := db.Order("id").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	buckets := make([]StageBucket, len(stageOrder))
	index := make(map[Stage]int, len(stageOrder))
	for i, s := range stageOrder {
		buckets[i] = StageBucket{Stage: s, Candidates: []models.Candidate{}}
		index[s] = i
	}
	for _, c := range candidates {
		i, ok := index[Stage(c.Stage)]
		if !ok {
			continue
		}
		buckets[i].Candidates = append(buckets[i].Candidates, c)
	}
	return buckets, nil
}

func AllowedNextStages(db *gorm.DB, id uint) ([]Stage, error) {
	c, err := Get(db, id)
	if err != nil {
		return nil, err
	}
	return Stage(c.Stage).Next(), nil
}

// AttachResume records where the candidate's resume was stored.
func AttachResume(db *gorm.DB, id uint, url string) error {
	res := db.Model(&models.Candidate{}).Where("id = ?", id).Update("resume_url", url)
	if res.Error != nil {
		return fmt.Errorf("failed to attach resume to candidate %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}
