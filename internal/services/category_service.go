package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/google/uuid"
)

var ErrDuplicateCategory = fmt.Errorf("%w: category already exists", ErrValidation)

const (
	aliasMatchThreshold = 0.7
	nameMatchThreshold  = 0.8
	nameMatchWeight     = 0.8
)

type categoryService struct {
	uow           repositories.UnitOfWork
	keywordGroups []keywordGroup
}

// keywordGroup ties merchant keywords to the names users commonly give the
// matching category.
type keywordGroup struct {
	aliases    []string
	keywords   []string
	confidence float64
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(uow repositories.UnitOfWork) CategoryServiceInterface {
	return &categoryService{
		uow:           uow,
		keywordGroups: initKeywordGroups(),
	}
}

// CreateCategory adds a category; names are unique per user ignoring case
func (s *categoryService) CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("category name is required")
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Color:  req.Color,
		Icon:   req.Icon,
	}

	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		existing, err := repos.Categories().ListByUser(userID)
		if err != nil {
			return err
		}
		for _, c := range existing {
			if strings.EqualFold(c.Name, name) {
				return ErrDuplicateCategory
			}
		}
		return repos.Categories().Create(category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns the user's categories ordered by name
func (s *categoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := s.uow.WithinTransaction(ctx, func(repos repositories.Repositories) error {
		var err error
		categories, err = repos.Categories().ListByUser(userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// SuggestCategory picks the user's category that best fits a transaction
// description. Merchant keywords are tried first, then a fuzzy match of the
// description words against the category names.
func (s *categoryService) SuggestCategory(ctx context.Context, userID uuid.UUID, description string) (*dto.CategorySuggestion, error) {
	categories, err := s.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	suggestion := &dto.CategorySuggestion{Description: description}
	best, score := s.suggest(description, categories)
	if best != nil {
		id := best.ID
		suggestion.CategoryID = &id
		suggestion.Name = best.Name
		suggestion.Confidence = score
	}
	return suggestion, nil
}

func (s *categoryService) suggest(description string, categories []models.Category) (*models.Category, float64) {
	if strings.TrimSpace(description) == "" || len(categories) == 0 {
		return nil, 0
	}

	words := descriptionWords(description)
	lowered := strings.ToLower(description)

	var best *models.Category
	var bestScore float64

	for _, group := range s.keywordGroups {
		if !group.matches(lowered, words) {
			continue
		}
		for i := range categories {
			score := group.confidence * group.aliasSimilarity(categories[i].Name)
			if score > bestScore {
				best, bestScore = &categories[i], score
			}
		}
	}
	if best != nil {
		return best, bestScore
	}

	for i := range categories {
		name := normalizeForMatching(categories[i].Name)
		for _, word := range words {
			similarity := calculateSimilarity(normalizeForMatching(word), name)
			if similarity >= nameMatchThreshold && similarity*nameMatchWeight > bestScore {
				best, bestScore = &categories[i], similarity*nameMatchWeight
			}
		}
	}
	return best, bestScore
}

func (g keywordGroup) matches(lowered string, words []string) bool {
	for _, keyword := range g.keywords {
		if strings.Contains(keyword, " ") {
			if strings.Contains(lowered, keyword) {
				return true
			}
			continue
		}
		for _, word := range words {
			if word == keyword {
				return true
			}
		}
	}
	return false
}

// aliasSimilarity is the best similarity between name and the group's aliases,
// or zero below the alias threshold
func (g keywordGroup) aliasSimilarity(name string) float64 {
	normalized := normalizeForMatching(name)
	var best float64
	for _, alias := range g.aliases {
		if similarity := calculateSimilarity(normalized, normalizeForMatching(alias)); similarity > best {
			best = similarity
		}
	}
	if best < aliasMatchThreshold {
		return 0
	}
	return best
}

func descriptionWords(description string) []string {
	return strings.FieldsFunc(strings.ToLower(description), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func initKeywordGroups() []keywordGroup {
	return []keywordGroup{
		{
			aliases:    []string{"dining", "restaurants", "restaurantes", "food", "comida"},
			keywords:   []string{"restaurant", "restaurante", "cafe", "café", "starbucks", "taqueria", "tacos", "pizza", "burger", "uber eats", "rappi", "didi food"},
			confidence: 0.95,
		},
		{
			aliases:    []string{"groceries", "supermercado", "despensa", "super"},
			keywords:   []string{"walmart", "soriana", "chedraui", "costco", "superama", "la comer", "heb", "grocery", "oxxo"},
			confidence: 0.9,
		},
		{
			aliases:    []string{"transport", "transportation", "transporte", "gasolina", "auto"},
			keywords:   []string{"uber", "didi", "cabify", "taxi", "pemex", "gasolina", "metro", "parking", "estacionamiento", "caseta"},
			confidence: 0.9,
		},
		{
			aliases:    []string{"entertainment", "entretenimiento", "subscriptions", "suscripciones", "streaming"},
			keywords:   []string{"netflix", "spotify", "disney", "hbo", "cinepolis", "cinemex", "steam", "playstation", "xbox", "prime video"},
			confidence: 0.9,
		},
		{
			aliases:    []string{"utilities", "servicios", "bills", "hogar"},
			keywords:   []string{"cfe", "telmex", "izzi", "totalplay", "telcel", "megacable", "internet", "agua", "luz"},
			confidence: 0.85,
		},
		{
			aliases:    []string{"health", "healthcare", "salud", "farmacia"},
			keywords:   []string{"farmacia", "pharmacy", "hospital", "doctor", "dentista", "laboratorio"},
			confidence: 0.85,
		},
		{
			aliases:    []string{"shopping", "compras", "ropa", "clothing", "electronics"},
			keywords:   []string{"amazon", "mercado libre", "liverpool", "palacio de hierro", "zara", "coppel", "sears", "best buy"},
			confidence: 0.8,
		},
		{
			aliases:    []string{"travel", "viajes", "vacaciones"},
			keywords:   []string{"aeromexico", "volaris", "vivaaerobus", "airbnb", "hotel", "booking", "expedia", "vuelo", "flight"},
			confidence: 0.9,
		},
		{
			aliases:    []string{"education", "educacion", "cursos", "escuela"},
			keywords:   []string{"coursera", "udemy", "platzi", "colegiatura", "tuition", "escuela"},
			confidence: 0.85,
		},
		{
			aliases:    []string{"income", "ingresos", "salary", "salario", "nomina"},
			keywords:   []string{"nomina", "nómina", "salary", "payroll", "sueldo"},
			confidence: 0.9,
		},
	}
}

// calculateSimilarity calculates the similarity score between two strings using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	previous := make([]int, len(s2)+1)
	current := make([]int, len(s2)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		current[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			current[j] = min(previous[j]+1, current[j-1]+1, previous[j-1]+cost)
		}
		previous, current = current, previous
	}

	return previous[len(s2)]
}

// normalizeForMatching normalizes strings for consistent matching
func normalizeForMatching(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '\'', '.':
			return -1
		case 'á':
			return 'a'
		case 'é':
			return 'e'
		case 'í':
			return 'i'
		case 'ó':
			return 'o'
		case 'ú':
			return 'u'
		}
		return r
	}, s)
}
