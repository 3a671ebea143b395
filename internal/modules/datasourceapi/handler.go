package datasourceapi

import (
	"net/http"

	"marinahub/internal/datasource"
	"marinahub/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

type SetModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=demo database"`
}

// Handler exposes the data-source mode toggle, the validation harness and the
// websocket feed that keeps open admin tabs in sync.
type Handler struct {
	settings  *datasource.Settings
	validator *datasource.Validator
	hub       *datasource.Hub
	upgrader  websocket.Upgrader
	log       zerolog.Logger
}

func NewHandler(settings *datasource.Settings, validator *datasource.Validator, hub *datasource.Hub, log zerolog.Logger) *Handler {
	return &Handler{
		settings:  settings,
		validator: validator,
		hub:       hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Auth happens at the token level; the socket only pushes events.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

func (h *Handler) GetMode(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"mode": h.settings.Mode()})
}

func (h *Handler) SetMode(c *gin.Context) {
	var req SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Mode must be demo or database")
		return
	}

	// Subscribers relay the change to open tabs; see datasource.RelayModeChanges.
	mode := datasource.Mode(req.Mode)
	if changed := h.settings.SetMode(mode); changed {
		h.log.Info().Str("mode", string(mode)).Msg("data source mode changed")
	}

	response.Success(c, http.StatusOK, gin.H{"mode": h.settings.Mode()})
}

func (h *Handler) Validate(c *gin.Context) {
	dataType := c.Param("type")

	res := h.validator.Validate(c.Request.Context(), dataType)
	if res.Error != "" && res.ExpectedCount == 0 && !res.SourceVerified {
		// Unknown type: no expected entry for either mode.
		response.Error(c, http.StatusNotFound, "UNKNOWN_DATA_TYPE", res.Error)
		return
	}

	h.hub.Broadcast(datasource.Event{Type: datasource.EventValidationResult, Data: res})
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ValidateAll(c *gin.Context) {
	results := h.validator.ValidateAll(c.Request.Context())

	valid := true
	for _, r := range results {
		if !r.IsValid {
			valid = false
			break
		}
	}

	payload := gin.H{
		"mode":      h.settings.Mode(),
		"all_valid": valid,
		"results":   results,
	}
	h.hub.Broadcast(datasource.Event{Type: datasource.EventValidationResult, Data: payload})
	response.Success(c, http.StatusOK, payload)
}

// Websocket upgrades the connection and holds it until the client goes away.
// Events are pushed by the hub; inbound frames are drained and discarded.
func (h *Handler) Websocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	id := h.hub.Register(conn)
	defer h.hub.Unregister(id)

	_ = conn.WriteJSON(datasource.Event{Type: datasource.EventModeChanged, Mode: h.settings.Mode()})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
