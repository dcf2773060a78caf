package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mergington/activities/internal/model"
)

// TeacherRepository reads credential records from the teachers file.
// The file is re-read on every call, so edits take effect without a
// restart; the service itself never writes it.
type TeacherRepository struct {
	path string
}

func NewTeacherRepository(path string) *TeacherRepository {
	return &TeacherRepository{path: path}
}

// LoadAll returns every credential record in file order.
func (r *TeacherRepository) LoadAll() ([]model.Teacher, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read teachers file: %w", err)
	}

	var doc struct {
		Teachers []model.Teacher `json:"teachers"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse teachers file: %w", err)
	}

	return doc.Teachers, nil
}
