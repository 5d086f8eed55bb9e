package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// SSEHandler writes a sequence of patches through a StreamContext.
//
//	handler.Stream(views.UploadPage(page), func(stream handler.StreamContext) error {
//		if err := stream.Remove("#error-summary"); err != nil {
//			return err
//		}
//		return stream.SendComponent(views.Banner(b), handler.WithTarget("#"+b.InputID), handler.WithPatchMode(handler.PatchAfter))
//	})
type SSEHandler func(ctx StreamContext) error

// StreamContext extends Context with methods that write datastar events.
type StreamContext interface {
	Context

	// SendComponent patches a templ component into the page.
	SendComponent(component TemplComponent, opts ...TemplOption) error

	// SendMultiple patches several components in order.
	SendMultiple(patches ...TemplPatch) error

	// SendSignals merges values into the client signal store.
	SendSignals(signals map[string]any) error

	// Remove deletes every element matching selector. Missing elements are ignored by the client.
	Remove(selector string) error

	// Focus moves keyboard focus to the element with the given id.
	Focus(id string) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendMultiple(patches ...TemplPatch) error {
	for _, patch := range patches {
		if err := c.sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
			return err
		}
	}
	return nil
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return fmt.Errorf("failed to encode signals: %w", err)
	}
	return c.sse.PatchSignals(data)
}

func (c *streamContext) Remove(selector string) error {
	return c.sse.PatchElements("",
		datastar.WithSelector(selector),
		datastar.WithMode(datastar.ElementPatchModeRemove),
	)
}

func (c *streamContext) Focus(id string) error {
	data, err := json.Marshal(id)
	if err != nil {
		return err
	}
	return c.sse.ExecuteScript(fmt.Sprintf("document.getElementById(%s)?.focus()", data))
}

type streamResponse struct {
	page    TemplComponent
	status  int
	handler SSEHandler
}

// Render runs the stream handler for datastar requests and renders the full
// page for plain requests.
func (s streamResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		if s.page == nil {
			return ErrBadRequest
		}
		return TemplStatus(s.status, s.page).Render(w, r)
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// Stream answers datastar requests with the events written by h and plain
// requests with page. A nil page makes the endpoint datastar-only.
func Stream(page TemplComponent, h SSEHandler) Response {
	return streamResponse{page: page, handler: h}
}

// StreamStatus works like Stream with a status code for the plain page.
func StreamStatus(status int, page TemplComponent, h SSEHandler) Response {
	return streamResponse{page: page, status: status, handler: h}
}
