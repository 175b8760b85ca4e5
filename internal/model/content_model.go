package model

import (
	"time"
)

// IconName is a symbolic icon identifier rendered by the frontend.
type IconName string

const (
	IconTruck        IconName = "Truck"
	IconFileText     IconName = "FileText"
	IconBarChart3    IconName = "BarChart3"
	IconUsers        IconName = "Users"
	IconImage        IconName = "ImageIcon"
	IconZap          IconName = "Zap"
	IconShield       IconName = "Shield"
	IconGlobe        IconName = "Globe"
	IconCpu          IconName = "Cpu"
	IconBuilding     IconName = "Building"
	IconPackage      IconName = "Package"
	IconCode         IconName = "Code"
	IconSettings     IconName = "Settings"
	IconDatabase     IconName = "Database"
	IconCloud        IconName = "Cloud"
	IconLock         IconName = "Lock"
	IconBell         IconName = "Bell"
	IconMail         IconName = "Mail"
	IconCalendar     IconName = "Calendar"
	IconWallet       IconName = "Wallet"
	IconShoppingCart IconName = "ShoppingCart"
	IconTrendingUp   IconName = "TrendingUp"
	IconTarget       IconName = "Target"
	IconPuzzle       IconName = "Puzzle"
)

// ValidIconNames lists every icon the frontend can render.
func ValidIconNames() []IconName {
	return []IconName{
		IconTruck, IconFileText, IconBarChart3, IconUsers, IconImage,
		IconZap, IconShield, IconGlobe, IconCpu, IconBuilding,
		IconPackage, IconCode, IconSettings, IconDatabase, IconCloud,
		IconLock, IconBell, IconMail, IconCalendar, IconWallet,
		IconShoppingCart, IconTrendingUp, IconTarget, IconPuzzle,
	}
}

// IsValidIconName reports whether name is one of the known icons.
func IsValidIconName(name IconName) bool {
	for _, n := range ValidIconNames() {
		if n == name {
			return true
		}
	}
	return false
}

type HeroContent struct {
	Tag             string `json:"tag"`
	TitleLine1      string `json:"titleLine1"`
	TitleLine2      string `json:"titleLine2"`
	Description     string `json:"description"`
	ButtonPrimary   string `json:"buttonPrimary"`
	ButtonSecondary string `json:"buttonSecondary"`
}

// Solution is one product card in the solutions section. Id is assigned
// once at creation and survives reordering and removal of siblings.
type Solution struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	DetailTitle string   `json:"detailTitle"`
	DetailText  string   `json:"detailText"`
	Image       string   `json:"image"`
	IconName    IconName `json:"iconName"`
}

type AboutContent struct {
	Tag                 string `json:"tag"`
	TitleLine1          string `json:"titleLine1"`
	TitleLine2          string `json:"titleLine2"`
	Paragraph1          string `json:"paragraph1"`
	Paragraph2          string `json:"paragraph2"`
	Paragraph3          string `json:"paragraph3"`
	Feature1Title       string `json:"feature1Title"`
	Feature1Description string `json:"feature1Description"`
	Feature2Title       string `json:"feature2Title"`
	Feature2Description string `json:"feature2Description"`
	ImageURL            string `json:"imageUrl"`
	ImageCaption        string `json:"imageCaption"`
	ImageSubcaption     string `json:"imageSubcaption"`
}

type PartnersContent struct {
	Title               string `json:"title"`
	Subtitle            string `json:"subtitle"`
	Description         string `json:"description"`
	Feature1Title       string `json:"feature1Title"`
	Feature1Description string `json:"feature1Description"`
	Feature2Title       string `json:"feature2Title"`
	Feature2Description string `json:"feature2Description"`
	Feature3Title       string `json:"feature3Title"`
	Feature3Description string `json:"feature3Description"`
}

type ContactContent struct {
	Title             string `json:"title"`
	IntroText         string `json:"introText"`
	AddressStreet     string `json:"addressStreet"`
	AddressPostalCode string `json:"addressPostalCode"`
	AddressCity       string `json:"addressCity"`
	AddressNote       string `json:"addressNote"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	FormTitle         string `json:"formTitle"`
	ButtonText        string `json:"buttonText"`
}

// ContentDocument is the full editable marketing-site content aggregate.
// Solution order is meaningful: it drives display order and layout pairing.
type ContentDocument struct {
	Hero      HeroContent     `json:"hero"`
	Solutions []Solution      `json:"solutions"`
	About     AboutContent    `json:"about"`
	Partners  PartnersContent `json:"partners"`
	Contact   ContactContent  `json:"contact"`
}

// Clone returns a deep copy. The orchestrator hands out clones so that
// readers of an earlier snapshot are never corrupted by later edits.
func (d *ContentDocument) Clone() *ContentDocument {
	cp := *d
	cp.Solutions = make([]Solution, len(d.Solutions))
	copy(cp.Solutions, d.Solutions)
	return &cp
}

// SaveStatus is a transient projection of the orchestrator's persistence
// state. It is never persisted itself.
type SaveStatus struct {
	IsSaving  bool       `json:"is_saving"`
	LastSaved *time.Time `json:"last_saved"`
	Error     string     `json:"error,omitempty"`
}
