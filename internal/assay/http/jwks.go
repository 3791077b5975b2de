package http

import (
	"net/http"

	"github.com/introprep/assay/pkg/httpx"
	"github.com/introprep/assay/pkg/jwtx"
)

// JWKSHandler exposes the JSON Web Key Set so session tokens can be
// verified without sharing the private key.
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, keys.PublicJWKS())
	}
}
