package autofill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/passkeeper/internal/models"
)

// PlaceholderValue значение, которое показывается в полях до вторичной аутентификации
const PlaceholderValue = "••••••••"

const noWebsiteSubtitle = "no website"

var (
	// ErrNoFields в форме нет полей логина или пароля
	ErrNoFields = errors.New("no autofill fields found")

	// ErrNoProfiles нет ни одного профиля для предложения
	ErrNoProfiles = errors.New("no profiles found")
)

// ProfileLister источник профилей для заполнения
type ProfileLister interface {
	ListProfiles(ctx context.Context) ([]*models.CredentialProfile, error)
}

// FillRequest запрос платформы на заполнение формы
type FillRequest struct {
	AppID string     `json:"app_id"`
	Roots []ViewNode `json:"-"`
}

// Dataset один вариант заполнения (один профиль).
// Values содержит только заглушки, настоящие значения выдает Resolver по Handle.
type Dataset struct {
	Values    map[string]string `json:"values"`
	ProfileID string            `json:"profile_id"`
	Title     string            `json:"title"`
	Subtitle  string            `json:"subtitle"`
	Handle    string            `json:"handle"`
}

// FillResponse ответ на запрос заполнения
type FillResponse struct {
	Fields   []FieldDescriptor `json:"fields"`
	Datasets []Dataset         `json:"datasets"`
}

// Matcher сопоставляет форму с сохраненными профилями
type Matcher struct {
	classifier *Classifier
	profiles   ProfileLister
	signer     *HandleSigner
}

// NewMatcher создает matcher
func NewMatcher(classifier *Classifier, profiles ProfileLister, signer *HandleSigner) *Matcher {
	return &Matcher{
		classifier: classifier,
		profiles:   profiles,
		signer:     signer,
	}
}

// Fill находит поля формы и предлагает подходящие профили.
// Каждый запрос читает свой снимок профилей, состояние между запросами не разделяется.
func (m *Matcher) Fill(ctx context.Context, req FillRequest) (*FillResponse, error) {
	fields, err := m.classifier.FindFields(ctx, req.Roots...)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	profiles, err := m.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	candidates := RankProfiles(profiles, req.AppID)
	if len(candidates) == 0 {
		return nil, ErrNoProfiles
	}

	resp := &FillResponse{
		Fields:   fields,
		Datasets: make([]Dataset, 0, len(candidates)),
	}

	for _, p := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		handle, err := m.signer.Sign(ctx, p.ID, req.AppID, fields)
		if err != nil {
			return nil, fmt.Errorf("failed to create handle for profile %s: %w", p.ID, err)
		}

		values := make(map[string]string, len(fields))
		for _, f := range fields {
			values[f.FieldID] = PlaceholderValue
		}

		subtitle := p.Website
		if subtitle == "" {
			subtitle = noWebsiteSubtitle
		}

		resp.Datasets = append(resp.Datasets, Dataset{
			ProfileID: p.ID,
			Title:     p.Title,
			Subtitle:  subtitle,
			Values:    values,
			Handle:    handle,
		})
	}

	slog.Debug("autofill request matched",
		"app_id", req.AppID,
		"fields", len(fields),
		"datasets", len(resp.Datasets),
	)

	return resp, nil
}
