package ledger

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/praiadomeio/app-ampm/internal/models"
	"github.com/praiadomeio/app-ampm/internal/utils"
)

const mapsSearchURL = "https://www.google.com/maps/search/"

// BuildDirectory groups members by street for the address directory.
// The search matches street, neighborhood or member name, ignoring case. Streets are sorted
// and members inside a street keep their registry order. city is appended to map queries.
func BuildDirectory(members []models.Member, search, city string) []models.DirectoryStreet {
	term := strings.ToLower(strings.TrimSpace(search))

	groups := make(map[string][]models.DirectoryEntry)
	for _, m := range members {
		if term != "" &&
			!containsFold(m.Address.Street, term) &&
			!containsFold(m.Address.Neighborhood, term) &&
			!containsFold(m.Name, term) {
			continue
		}
		groups[m.Address.Street] = append(groups[m.Address.Street], models.DirectoryEntry{
			MemberID:     m.ID,
			Name:         m.Name,
			Number:       m.Address.Number,
			Complement:   m.Address.Complement,
			Neighborhood: m.Address.Neighborhood,
			ZipCode:      m.Address.ZipCode,
			Phone:        utils.FormatPhone(m.Phone),
			Active:       m.Active,
			MapsURL:      MapsURL(m.Address, city),
		})
	}

	streets := make([]string, 0, len(groups))
	for street := range groups {
		streets = append(streets, street)
	}
	sortByName(streets, func(s string) string { return s })

	out := make([]models.DirectoryStreet, 0, len(streets))
	for _, street := range streets {
		out = append(out, models.DirectoryStreet{Street: street, Members: groups[street]})
	}
	return out
}

// MapsURL returns a map search link for an address
func MapsURL(addr models.Address, city string) string {
	parts := []string{addr.Street, addr.Number, addr.Neighborhood}
	if city != "" {
		parts = append(parts, city)
	}
	parts = append(parts, addr.ZipCode)

	query := url.Values{}
	query.Set("api", "1")
	query.Set("query", strings.Join(parts, ", "))
	return fmt.Sprintf("%s?%s", mapsSearchURL, query.Encode())
}
