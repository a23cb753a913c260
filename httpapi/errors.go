package httpapi

import (
	"errors"
	"net/http"

	"github.com/Ismail26477/veda-ai-task1/core"
	"github.com/Ismail26477/veda-ai-task1/pkg/res"
)

func writeErr(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		res.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrNotFound):
		res.Error(w, "Task not found", http.StatusNotFound)
	default:
		res.Error(w, msg, http.StatusInternalServerError)
	}
}
