// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package i18n

import "golang.org/x/text/language"

// Keys used by the UI.
const (
	KeyPromptPlaceholder = "parameters.promptPlaceholder"
	KeyPromptTitle       = "parameters.prompt"
	KeyStatusReady       = "status.ready"
	KeyStatusNotReady    = "status.notReady"
	KeyStatusQueued      = "status.queued"
	KeyStatusChecking    = "status.checking"
	KeyQueueTitle        = "queue.title"
	KeyQueueEmpty        = "queue.empty"
	KeyHelpTitle         = "help.title"
)

var messages = map[language.Tag]map[string]string{
	language.English: {
		KeyPromptPlaceholder: "I'm dreaming of...",
		KeyPromptTitle:       "Prompt",
		KeyStatusReady:       "ready",
		KeyStatusNotReady:    "not ready",
		KeyStatusQueued:      "queued",
		KeyStatusChecking:    "checking",
		KeyQueueTitle:        "Queue",
		KeyQueueEmpty:        "Nothing queued yet. Type a prompt and press Enter.",
		KeyHelpTitle:         "Available Commands",
	},
	language.German: {
		KeyPromptPlaceholder: "Ich träume von...",
		KeyPromptTitle:       "Prompt",
		KeyStatusReady:       "bereit",
		KeyStatusNotReady:    "nicht bereit",
		KeyStatusQueued:      "in Warteschlange",
		KeyStatusChecking:    "prüfe",
		KeyQueueTitle:        "Warteschlange",
		KeyQueueEmpty:        "Noch nichts in der Warteschlange. Prompt eingeben und Enter drücken.",
		KeyHelpTitle:         "Verfügbare Befehle",
	},
	language.Spanish: {
		KeyPromptPlaceholder: "Estoy soñando con...",
		KeyPromptTitle:       "Prompt",
		KeyStatusReady:       "listo",
		KeyStatusNotReady:    "no listo",
		KeyStatusQueued:      "en cola",
		KeyStatusChecking:    "comprobando",
		KeyQueueTitle:        "Cola",
		KeyQueueEmpty:        "La cola está vacía. Escribe un prompt y pulsa Enter.",
		KeyHelpTitle:         "Comandos disponibles",
	},
	language.French: {
		KeyPromptPlaceholder: "Je rêve de...",
		KeyPromptTitle:       "Prompt",
		KeyStatusReady:       "prêt",
		KeyStatusNotReady:    "pas prêt",
		KeyStatusQueued:      "en file",
		KeyStatusChecking:    "vérification",
		KeyQueueTitle:        "File d'attente",
		KeyQueueEmpty:        "Rien en file. Saisissez un prompt et appuyez sur Entrée.",
		KeyHelpTitle:         "Commandes disponibles",
	},
}
