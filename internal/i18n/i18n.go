// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for the
// araçtakip client. It uses the go-i18n library to load and manage translation
// files, allowing validation and pipeline messages to be displayed in multiple
// languages. Turkish is the default, matching the remote API's locale.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded translation messages from the locale files.
var bundle *goi18n.Bundle

// localizer is used to translate messages into a specific language.
var localizer *goi18n.Localizer

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// It parses all embedded YAML files from the 'locales' directory.
func Init(lang string) {
	bundle = goi18n.NewBundle(language.Turkish)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = goi18n.NewLocalizer(bundle, lang)
}

// T translates a message by its ID. Optional arguments are interpolated with
// fmt.Sprintf into the localized template. If the i18n system has not been
// initialized, it defaults to Turkish. If a translation for the given ID is
// not found, it returns the ID itself.
func T(messageID string, args ...interface{}) string {
	if localizer == nil {
		Init("tr")
	}
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		// If the message ID is not found, go-i18n returns an error.
		// In this case, we return the message ID itself as a fallback.
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}
