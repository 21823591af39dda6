package handler

import (
	"net/http"

	"github.com/mokobill/MedTrack/internal/notify"
	"github.com/mokobill/MedTrack/internal/store"
	"github.com/mokobill/MedTrack/internal/utils"
)

// Collaborateurs injectés une fois au démarrage
var (
	appStore store.Store
	notifier *notify.Service
)

// Init branche les collaborateurs partagés sur les handlers
func Init(st store.Store, n *notify.Service) {
	appStore = st
	notifier = n
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
