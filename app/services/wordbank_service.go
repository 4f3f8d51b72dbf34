package services

import (
	"errors"
	"strings"
	"wordquest/app/models"
	"wordquest/app/repo"

	"gorm.io/gorm"
)

// Word-bank warnings. These surface as flash messages on the admin page,
// never as HTTP errors.
var (
	ErrInvalidWord   = errors.New("invalid word or level")
	ErrDuplicateWord = errors.New("word already exists")
)

type WordBankService struct{ words *repo.WordRepository }

func NewWordBankService(words *repo.WordRepository) *WordBankService {
	return &WordBankService{words: words}
}

// Add normalizes text to trimmed upper-case before storing. It returns the
// normalized text so callers can echo it back to the admin.
func (s *WordBankService) Add(text, level string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	if normalized == "" || !models.ValidLevel(level) {
		return normalized, ErrInvalidWord
	}
	count, err := s.words.CountByText(normalized)
	if err != nil {
		return normalized, err
	}
	if count > 0 {
		return normalized, ErrDuplicateWord
	}
	if err := s.words.Create(&models.Word{Text: normalized, Level: level}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return normalized, ErrDuplicateWord
		}
		return normalized, err
	}
	return normalized, nil
}

// ListAll groups every word under its level, upper-cased. All three level
// keys are always present, even when empty.
func (s *WordBankService) ListAll() (map[string][]string, error) {
	words, err := s.words.ListAll()
	if err != nil {
		return nil, err
	}
	result := map[string][]string{
		models.LevelEasy:   {},
		models.LevelMedium: {},
		models.LevelHard:   {},
	}
	for _, w := range words {
		if _, ok := result[w.Level]; ok {
			result[w.Level] = append(result[w.Level], strings.ToUpper(w.Text))
		}
	}
	return result, nil
}

func (s *WordBankService) ListOrdered() ([]models.Word, error) { return s.words.ListOrdered() }

func (s *WordBankService) Delete(id uint) (*models.Word, error) {
	w, err := s.words.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.words.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}
