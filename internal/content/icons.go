package content

import (
	"strings"

	"timo-intelligence-be/internal/model"
)

// Keyword hints per icon, checked in order. Dutch and English terms
// because administrators type both.
var iconKeywords = []struct {
	icon  model.IconName
	terms []string
}{
	{model.IconTruck, []string{"vloot", "fleet", "transport", "route", "logistiek"}},
	{model.IconFileText, []string{"tender", "aanbesteding", "document", "offerte"}},
	{model.IconBarChart3, []string{"insight", "analytics", "data", "dashboard", "rapport"}},
	{model.IconUsers, []string{"medewerker", "team", "personeel", "rooster", "hr"}},
	{model.IconImage, []string{"beeld", "foto", "image", "visie", "vision"}},
	{model.IconShield, []string{"security", "beveiliging", "compliance", "iso", "avg"}},
	{model.IconWallet, []string{"betaling", "financ", "budget", "factuur"}},
	{model.IconShoppingCart, []string{"webshop", "verkoop", "e-commerce", "bestel"}},
	{model.IconMail, []string{"mail", "bericht", "communicatie"}},
	{model.IconCalendar, []string{"agenda", "planning", "kalender"}},
	{model.IconGlobe, []string{"web", "online", "portaal"}},
	{model.IconCloud, []string{"cloud", "hosting"}},
	{model.IconDatabase, []string{"database", "opslag"}},
	{model.IconPuzzle, []string{"integratie", "koppeling", "ecosysteem"}},
	{model.IconTrendingUp, []string{"groei", "performance", "omzet"}},
}

// SelectIconFromText suggests an icon for a new solution based on its
// title and description. Falls back to Cpu, the generic tech icon.
func SelectIconFromText(title, description string) model.IconName {
	haystack := strings.ToLower(title + " " + description)
	for _, entry := range iconKeywords {
		for _, term := range entry.terms {
			if strings.Contains(haystack, term) {
				return entry.icon
			}
		}
	}
	return model.IconCpu
}
