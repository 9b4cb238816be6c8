// Package game holds the static template tables the game is seeded from.
// Templates are identified by an enumerated kind; the wire API still speaks
// template names, which resolve through indexes built once at init.
package game

import "github.com/mlukichev/clicker-backend/internal/model"

type UpgradeKind string

const (
	UpgradeCursor  UpgradeKind = "cursor"
	UpgradeGrandma UpgradeKind = "grandma"
	UpgradeFarm    UpgradeKind = "farm"
	UpgradeFactory UpgradeKind = "factory"
	UpgradeMine    UpgradeKind = "mine"
	UpgradeBank    UpgradeKind = "bank"
)

type AchievementKind string

const (
	AchievementFirstClick    AchievementKind = "first_click"
	AchievementHundredClicks AchievementKind = "hundred_clicks"
	AchievementFirstUpgrade  AchievementKind = "first_upgrade"
	AchievementThousand      AchievementKind = "thousand_points"
	AchievementAutomation    AchievementKind = "automation"
	AchievementMillionaire   AchievementKind = "millionaire"
)

type SkinKind string

const (
	SkinDefault SkinKind = "default"
	SkinOcean   SkinKind = "ocean"
	SkinForest  SkinKind = "forest"
	SkinSunset  SkinKind = "sunset"
	SkinSpace   SkinKind = "space"
)

// DefaultCostMultiplier is the per-level price growth applied to every
// upgrade kind (15% per owned level).
const DefaultCostMultiplier = 1.15

type UpgradeTemplate struct {
	Kind           UpgradeKind
	Name           string
	Icon           string
	Description    string
	BaseCost       int64
	BaseProduction int64
}

type AchievementTemplate struct {
	Kind        AchievementKind
	Name        string
	Icon        string
	Description string
}

type SkinTemplate struct {
	Kind        SkinKind
	Name        string
	Description string
	BaseCost    int64
	Colors      model.ColorPalette
}

var upgradeTemplates = []UpgradeTemplate{
	{UpgradeCursor, "Курсор", "👆", "Автоматически кликает 1 раз в секунду", 15, 1},
	{UpgradeGrandma, "Бабушка", "👵", "Печет печеньки и приносит по 5 очков в секунду", 100, 5},
	{UpgradeFarm, "Ферма", "🌾", "Выращивает ресурсы, принося по 20 очков в секунду", 500, 20},
	{UpgradeFactory, "Фабрика", "🏭", "Производит товары: 50 очков в секунду", 2000, 50},
	{UpgradeMine, "Шахта", "⛏️", "Добывает ресурсы: 100 очков в секунду", 5000, 100},
	{UpgradeBank, "Банк", "🏦", "Инвестирует деньги: 200 очков в секунду", 10000, 200},
}

var achievementTemplates = []AchievementTemplate{
	{AchievementFirstClick, "Первый клик", "🎯", "Сделайте ваш первый клик"},
	{AchievementHundredClicks, "Сотня кликов", "💯", "Наберите 100 очков"},
	{AchievementFirstUpgrade, "Первое улучшение", "⬆️", "Купите первое улучшение"},
	{AchievementThousand, "Тысяча очков", "🌟", "Наберите 1000 очков"},
	{AchievementAutomation, "Автоматизация", "🤖", "Достигните 10 очков в секунду"},
	{AchievementMillionaire, "Миллионер", "💰", "Наберите 1,000,000 очков"},
}

var skinTemplates = []SkinTemplate{
	{SkinDefault, "Стандартный", "Классический вид игры", 0, model.ColorPalette{
		Primary:   "#667eea",
		Secondary: "#764ba2",
		Button:    "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
		Character: "#FFD700",
	}},
	{SkinOcean, "Океан", "Морская тематика", 1000, model.ColorPalette{
		Primary:   "#00c6ff",
		Secondary: "#0072ff",
		Button:    "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		Character: "#4FC3F7",
	}},
	{SkinForest, "Лес", "Природная свежесть", 2000, model.ColorPalette{
		Primary:   "#56ab2f",
		Secondary: "#a8e063",
		Button:    "linear-gradient(135deg, #11998e 0%, #38ef7d 100%)",
		Character: "#8BC34A",
	}},
	{SkinSunset, "Закат", "Теплые вечерние цвета", 3000, model.ColorPalette{
		Primary:   "#ff6a00",
		Secondary: "#ee0979",
		Button:    "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
		Character: "#FF7043",
	}},
	{SkinSpace, "Космос", "Звездное небо", 5000, model.ColorPalette{
		Primary:   "#0f2027",
		Secondary: "#2c5364",
		Button:    "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		Character: "#9C27B0",
	}},
}

var (
	upgradesByName        map[string]UpgradeTemplate
	achievementKindByName map[string]AchievementKind
)

func init() {
	upgradesByName = make(map[string]UpgradeTemplate, len(upgradeTemplates))
	for _, t := range upgradeTemplates {
		upgradesByName[t.Name] = t
	}
	achievementKindByName = make(map[string]AchievementKind, len(achievementTemplates))
	for _, t := range achievementTemplates {
		achievementKindByName[t.Name] = t.Kind
	}
}

func Upgrades() []UpgradeTemplate {
	return upgradeTemplates
}

func Achievements() []AchievementTemplate {
	return achievementTemplates
}

func Skins() []SkinTemplate {
	return skinTemplates
}

// UpgradeByName resolves the wire-level template name a client sends.
func UpgradeByName(name string) (UpgradeTemplate, bool) {
	t, ok := upgradesByName[name]
	return t, ok
}

// AchievementKindByName maps a stored achievement row back to its rule tag.
func AchievementKindByName(name string) (AchievementKind, bool) {
	k, ok := achievementKindByName[name]
	return k, ok
}
