package autofill

import (
	"strings"

	"github.com/iudanet/passkeeper/internal/models"
)

// FallbackLimit сколько профилей предлагается, если ни один не подошел
const FallbackLimit = 5

// RankProfiles отбирает профили для приложения appID.
// Профиль подходит, если (без учета регистра) его website или title содержит appID,
// либо appID содержит непустой website. Если не подошел ни один, возвращаются первые
// FallbackLimit профилей в исходном порядке: это предложение с низкой уверенностью.
func RankProfiles(profiles []*models.CredentialProfile, appID string) []*models.CredentialProfile {
	id := strings.ToLower(strings.TrimSpace(appID))

	var matched []*models.CredentialProfile
	if id != "" {
		for _, p := range profiles {
			if matchesApp(p, id) {
				matched = append(matched, p)
			}
		}
	}

	if len(matched) > 0 {
		return matched
	}

	return profiles[:min(len(profiles), FallbackLimit)]
}

// matchesApp id уже в нижнем регистре
func matchesApp(p *models.CredentialProfile, id string) bool {
	website := strings.ToLower(strings.TrimSpace(p.Website))
	title := strings.ToLower(p.Title)

	if website != "" && (strings.Contains(website, id) || strings.Contains(id, website)) {
		return true
	}
	return strings.Contains(title, id)
}
