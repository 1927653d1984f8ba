package i18n

var translations = map[string]Translation{
	"en-US": {PropertyDefaults: PropertyDefaults{Title: "Untitled", Description: "No description provided"}},
	"en-GB": {PropertyDefaults: PropertyDefaults{Title: "Untitled", Description: "No description provided"}},
	"ru-RU": {PropertyDefaults: PropertyDefaults{Title: "Без названия", Description: "Описание отсутствует"}},
	"uk-UA": {PropertyDefaults: PropertyDefaults{Title: "Без назви", Description: "Опис не надано"}},
	"de-DE": {PropertyDefaults: PropertyDefaults{Title: "Unbenannt", Description: "Keine Beschreibung angegeben"}},
	"fr-FR": {PropertyDefaults: PropertyDefaults{Title: "Sans titre", Description: "Aucune description fournie"}},
	"es-ES": {PropertyDefaults: PropertyDefaults{Title: "Sin título", Description: "Sin descripción"}},
	"ja-JP": {PropertyDefaults: PropertyDefaults{Title: "無題", Description: "説明なし"}},
}
