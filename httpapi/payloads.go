package httpapi

import "github.com/Ismail26477/veda-ai-task1/core"

type createTaskIn struct {
	core.Draft
	// Clients that stamp createdAt themselves keep their value;
	// otherwise the server assigns it.
	CreatedAt string `json:"createdAt"`
}
