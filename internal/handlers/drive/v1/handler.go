// Package v1 serves the drive API as JSON over HTTP
package v1

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	entity "github.com/KirkDiggler/drive-api/internal/entities/drive"
	"github.com/KirkDiggler/drive-api/internal/errors"
	"github.com/KirkDiggler/drive-api/internal/orchestrators/drive"
)

const (
	// RoutePrefix is where the drive API is mounted
	RoutePrefix = "/api/drive"

	maxBodyBytes = 1 << 20
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	DriveService drive.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.DriveService == nil {
		return errors.InvalidArgument("drive service is required")
	}
	return nil
}

// Handler implements the drive HTTP API
type Handler struct {
	driveService drive.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		driveService: cfg.DriveService,
	}, nil
}

// RegisterRoutes mounts every drive route on mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST "+RoutePrefix+"/add", h.AddDrive)
	mux.HandleFunc("GET "+RoutePrefix+"/pieces", h.ListDrives)
	mux.HandleFunc("GET "+RoutePrefix+"/pieces/{id}", h.GetDrive)
	mux.HandleFunc("PUT "+RoutePrefix+"/pieces/{id}", h.UpdateDrive)
	mux.HandleFunc("DELETE "+RoutePrefix+"/pieces/{id}", h.DeleteDrive)
	mux.HandleFunc("POST "+RoutePrefix+"/pieces/{id}/upgrade", h.UpgradeDrive)
	mux.HandleFunc("POST "+RoutePrefix+"/pieces/{id}/downgrade", h.DowngradeDrive)
	mux.HandleFunc("GET "+RoutePrefix+"/set-types", h.ListSetTypes)
	mux.HandleFunc("GET "+RoutePrefix+"/stat-types", h.ListStatTypes)
	mux.HandleFunc("GET "+RoutePrefix+"/slots", h.ListSlotRules)
	mux.HandleFunc("POST "+RoutePrefix+"/form/check", h.CheckForm)
	mux.HandleFunc("GET "+RoutePrefix+"/stats", h.GetStatistics)
	mux.HandleFunc("POST "+RoutePrefix+"/stats/pairing", h.CalculatePairing)
}

// AddDrive stores a new drive
func (h *Handler) AddDrive(w http.ResponseWriter, r *http.Request) {
	var req AddDriveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.driveService.CreateDrive(r.Context(), &drive.CreateDriveInput{
		SetName:  req.SetName,
		Position: req.Position,
		MainStat: req.MainStat,
		Substats: req.Substats,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, &DriveMessageResponse{
		Message: "drive created",
		Drive:   convertPiece(output.Piece),
	})
}

// ListDrives returns one page of drives. Unparseable paging parameters fall back to defaults.
func (h *Handler) ListDrives(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	output, err := h.driveService.ListDrives(r.Context(), &drive.ListDrivesInput{
		Page:    queryInt(query.Get("page"), drive.DefaultPage),
		PerPage: queryInt(query.Get("per_page"), drive.DefaultPerPage),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &ListDrivesResponse{
		Drives:     convertPieces(output.Pieces),
		Pagination: convertPagination(output.Pagination),
	})
}

// GetDrive returns a single drive
func (h *Handler) GetDrive(w http.ResponseWriter, r *http.Request) {
	output, err := h.driveService.GetDrive(r.Context(), &drive.GetDriveInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, convertPiece(output.Piece))
}

// UpdateDrive edits the main stat and/or substats of a drive
func (h *Handler) UpdateDrive(w http.ResponseWriter, r *http.Request) {
	var req UpdateDriveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.driveService.UpdateDrive(r.Context(), &drive.UpdateDriveInput{
		ID:       r.PathValue("id"),
		MainStat: req.MainStat,
		Substats: req.Substats,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &DriveMessageResponse{
		Message: "drive updated",
		Drive:   convertPiece(output.Piece),
	})
}

// DeleteDrive removes a drive
func (h *Handler) DeleteDrive(w http.ResponseWriter, r *http.Request) {
	_, err := h.driveService.DeleteDrive(r.Context(), &drive.DeleteDriveInput{
		ID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &DriveMessageResponse{Message: "drive deleted"})
}

// UpgradeDrive applies one upgrade step
func (h *Handler) UpgradeDrive(w http.ResponseWriter, r *http.Request) {
	var req UpgradeDriveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.driveService.UpgradeDrive(r.Context(), &drive.UpgradeDriveInput{
		ID:             r.PathValue("id"),
		Type:           entity.UpgradeType(req.UpgradeType),
		NewSubstatName: req.NewSubstatName,
		SubstatID:      req.SubstatID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, convertUpgrade("drive upgraded", output.Piece, output.Result))
}

// DowngradeDrive undoes one upgrade step
func (h *Handler) DowngradeDrive(w http.ResponseWriter, r *http.Request) {
	var req DowngradeDriveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.driveService.DowngradeDrive(r.Context(), &drive.DowngradeDriveInput{
		ID:        r.PathValue("id"),
		SubstatID: req.SubstatID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, convertUpgrade("drive downgraded", output.Piece, output.Result))
}

// ListSetTypes returns the set names in the catalog
func (h *Handler) ListSetTypes(w http.ResponseWriter, r *http.Request) {
	output, err := h.driveService.ListSetTypes(r.Context(), &drive.ListSetTypesInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	names := make([]string, 0, len(output.SetTypes))
	for _, st := range output.SetTypes {
		names = append(names, st.Name)
	}
	writeJSON(w, http.StatusOK, names)
}

// ListStatTypes returns the stat names in the catalog
func (h *Handler) ListStatTypes(w http.ResponseWriter, r *http.Request) {
	output, err := h.driveService.ListStatTypes(r.Context(), &drive.ListStatTypesInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats := output.Stats
	if stats == nil {
		stats = []string{}
	}
	writeJSON(w, http.StatusOK, stats)
}

// ListSlotRules returns the primary attribute rule of every slot
func (h *Handler) ListSlotRules(w http.ResponseWriter, r *http.Request) {
	output, err := h.driveService.ListSlotRules(r.Context(), &drive.ListSlotRulesInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, convertSlotRules(output))
}

// CheckForm applies form edits through the engine and reports the result
func (h *Handler) CheckForm(w http.ResponseWriter, r *http.Request) {
	var req CheckFormRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.driveService.CheckForm(r.Context(), &drive.CheckFormInput{
		Form:                req.Form,
		NewSlot:             req.NewPosition,
		NewPrimaryAttribute: req.NewMainStatName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, convertReport(output.Report))
}

// GetStatistics returns the collection summary
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	output, err := h.driveService.GetStatistics(r.Context(), &drive.GetStatisticsInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, convertStatistics(output.Statistics))
}

// CalculatePairing compares actual and independent co-occurrence of substats
func (h *Handler) CalculatePairing(w http.ResponseWriter, r *http.Request) {
	var req PairingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	output, err := h.driveService.CalculatePairing(r.Context(), &drive.CalculatePairingInput{
		SelectedStats: req.SelectedStats,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, convertPairing(output.Pairing))
}

// decodeBody reads a JSON object into dst. It answers 400 itself and returns
// false when the body is missing or malformed.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(body).Decode(dst)
	switch {
	case err == nil:
		return true
	case err == io.EOF:
		writeError(w, r, errors.InvalidArgument("request body is required"))
	default:
		writeError(w, r, errors.InvalidArgumentf("invalid request body: %v", err))
	}
	return false
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err.Error())
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	// Server side failures keep their causes in the log only
	message := errors.Describe(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", code.String(),
			"error", err.Error())
		message = errors.GetMessage(err)
	}

	writeJSON(w, status, &ErrorResponse{
		Error: message,
		Code:  code.String(),
		Meta:  errors.GetMeta(err),
	})
}
