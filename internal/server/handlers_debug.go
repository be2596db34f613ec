package server

import (
	"net/http"
	"sort"
	"strings"
)

// publicConfigPrefix selects the environment names reported by /debug-env.
const publicConfigPrefix = "NEXT_PUBLIC_FIREBASE"

// publicConfigKeys are reported as present or absent, never by value.
var publicConfigKeys = []string{
	"NEXT_PUBLIC_FIREBASE_API_KEY",
	"NEXT_PUBLIC_FIREBASE_AUTH_DOMAIN",
	"NEXT_PUBLIC_FIREBASE_PROJECT_ID",
	"NEXT_PUBLIC_FIREBASE_STORAGE_BUCKET",
	"NEXT_PUBLIC_FIREBASE_MESSAGING_SENDER_ID",
	"NEXT_PUBLIC_FIREBASE_APP_ID",
}

// DebugEnvResponse describes which public client configuration is present.
type DebugEnvResponse struct {
	Environment  string          `json:"environment"`
	FirebaseVars map[string]bool `json:"firebaseVars"`
	AllEnvVars   []string        `json:"allEnvVars"`
}

func (s *Server) handleDebugEnv(w http.ResponseWriter, _ *http.Request) {
	if s.cfg.Production && !s.cfg.DebugEnv {
		s.jsonResponse(w, http.StatusForbidden, map[string]string{"error": msgDebugDisabled})
		return
	}

	resp := DebugEnvResponse{
		Environment:  s.cfg.Environment,
		FirebaseVars: make(map[string]bool, len(publicConfigKeys)),
		AllEnvVars:   []string{},
	}
	for _, key := range publicConfigKeys {
		v, ok := s.lookup(key)
		resp.FirebaseVars[key] = ok && v != ""
	}
	for _, kv := range s.environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, publicConfigPrefix) {
			resp.AllEnvVars = append(resp.AllEnvVars, name)
		}
	}
	sort.Strings(resp.AllEnvVars)

	s.jsonResponse(w, http.StatusOK, resp)
}
