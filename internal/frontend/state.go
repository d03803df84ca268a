package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/janpfeifer/GoPairs/internal/i18n"
)

// GlobalClientState holds the settings shared by all components.
type GlobalClientState struct {
	Language string

	// Listeners for state updates
	Listeners map[string]func()
}

var State *GlobalClientState

func InitState() {
	if State == nil {
		klog.V(1).Infof("InitState: creating new state (was nil)")
		State = &GlobalClientState{
			Language:  i18n.DefaultLanguage,
			Listeners: make(map[string]func()),
		}
	} else {
		klog.V(1).Infof("InitState: state already exists")
	}
}

// LanguageFromURL picks the language from the "lang" query parameter, if any.
func (s *GlobalClientState) LanguageFromURL() {
	if app.IsServer {
		return
	}
	lang := app.Window().URL().Query().Get("lang")
	if lang == "" {
		return
	}
	s.Language = i18n.Load(lang).Language()
	klog.Infof("LanguageFromURL: language is now %s", s.Language)
}

// SetLanguage switches the language and notifies listeners.
func (s *GlobalClientState) SetLanguage(lang string) {
	s.Language = i18n.Load(lang).Language()
	klog.Infof("SetLanguage: language is now %s", s.Language)
	s.Notify()
}

func (s *GlobalClientState) Notify() {
	klog.V(1).Infof("GlobalClientState: Notifying %d listeners", len(s.Listeners))
	for _, l := range s.Listeners {
		if l != nil {
			l()
		}
	}
}
