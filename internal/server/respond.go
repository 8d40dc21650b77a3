package server

import (
	"encoding/json"
	"net/http"
)

func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func errorResponse(w http.ResponseWriter, status int, detail string) {
	jsonResponse(w, status, detailResponse{Detail: detail})
}
