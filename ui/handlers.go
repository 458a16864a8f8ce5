package ui

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bloodgas/adapters/excel"
	"bloodgas/app"
	"bloodgas/domain/abg"
	"bloodgas/domain/core"
	"bloodgas/internal/catalog"
	apperrors "bloodgas/internal/errors"
)

// generateRequest is the JSON request body for panel generation.
type generateRequest struct {
	Mode string `json:"mode"`

	// Disorder mode.
	Disorder          string `json:"disorder,omitempty"`
	SecondaryDisorder string `json:"secondary_disorder,omitempty"`
	Severity          string `json:"severity,omitempty"`
	Compensation      string `json:"compensation,omitempty"`
	Duration          string `json:"duration,omitempty"`

	// Scenario mode.
	Conditions          []string          `json:"conditions,omitempty"`
	ConditionSeverities map[string]string `json:"condition_severities,omitempty"`

	Patient *abg.PatientFactors `json:"patient,omitempty"`
	FiO2    float64             `json:"fio2,omitempty"`
	Seed    int64               `json:"seed,omitempty"`

	Variability *bool `json:"variability,omitempty"`
	LowNoise    bool  `json:"low_noise,omitempty"`
}

func (gr generateRequest) toAppRequest() (app.GenerateRequest, error) {
	params := abg.GenerationParams{
		Mode: gr.Mode,
		FiO2: gr.FiO2,
		Seed: gr.Seed,
	}
	if params.Mode == "" {
		if len(gr.Conditions) > 0 {
			params.Mode = abg.ModeScenario
		} else {
			params.Mode = abg.ModeDisorder
		}
	}
	if params.FiO2 == 0 {
		params.FiO2 = 0.21
	}

	if gr.Disorder != "" {
		disorder, err := abg.ParseDisorder(gr.Disorder)
		if err != nil {
			return app.GenerateRequest{}, apperrors.InvalidInput(err.Error())
		}
		params.PrimaryDisorder = disorder
	}
	if gr.SecondaryDisorder != "" {
		disorder, err := abg.ParseDisorder(gr.SecondaryDisorder)
		if err != nil {
			return app.GenerateRequest{}, apperrors.InvalidInput(err.Error())
		}
		params.SecondaryDisorder = disorder
	}
	if gr.Severity != "" {
		severity, err := abg.ParseSeverity(gr.Severity)
		if err != nil {
			return app.GenerateRequest{}, apperrors.InvalidInput(err.Error())
		}
		params.DisorderSeverity = severity
	}
	if gr.Compensation != "" {
		compensation, err := abg.ParseCompensation(gr.Compensation)
		if err != nil {
			return app.GenerateRequest{}, apperrors.InvalidInput(err.Error())
		}
		params.SpecifiedCompensation = compensation
	}
	if gr.Duration != "" {
		duration, err := abg.ParseDuration(gr.Duration)
		if err != nil {
			return app.GenerateRequest{}, apperrors.InvalidInput(err.Error())
		}
		params.Duration = duration
	}

	for _, name := range gr.Conditions {
		condition, err := abg.ParseClinicalCondition(name)
		if err != nil {
			return app.GenerateRequest{}, apperrors.InvalidInput(err.Error())
		}
		params.Conditions = append(params.Conditions, condition)
	}
	if len(gr.ConditionSeverities) > 0 {
		params.ConditionSeverities = make(map[abg.ClinicalCondition]abg.Severity, len(gr.ConditionSeverities))
		for name, sevName := range gr.ConditionSeverities {
			condition, err := abg.ParseClinicalCondition(name)
			if err != nil {
				return app.GenerateRequest{}, apperrors.InvalidInput(err.Error())
			}
			severity, err := abg.ParseSeverity(sevName)
			if err != nil {
				return app.GenerateRequest{}, apperrors.InvalidInput(err.Error())
			}
			params.ConditionSeverities[condition] = severity
		}
	}

	if gr.Patient != nil {
		params.Patient = *gr.Patient
	} else {
		params.Patient = abg.DefaultPatient()
	}

	addVariability := true
	if gr.Variability != nil {
		addVariability = *gr.Variability
	}

	return app.GenerateRequest{
		Params:         params,
		AddVariability: addVariability,
		LowNoise:       gr.LowNoise,
	}, nil
}

// batchRequest is the JSON request body for cohort generation.
type batchRequest struct {
	generateRequest
	Count  int    `json:"count"`
	Export string `json:"export,omitempty"` // "xlsx" or "csv"
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGenerate produces a single panel
func (a *App) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, apperrors.InvalidInput("invalid request body: "+err.Error()))
		return
	}

	appReq, err := req.toAppRequest()
	if err != nil {
		a.writeError(w, err)
		return
	}

	result, err := a.generator.Generate(r.Context(), appReq)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result.Rounded())
}

// handleGetResult loads a persisted panel by ID
func (a *App) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseResultID(chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, apperrors.InvalidInput(err.Error()))
		return
	}

	result, err := a.generator.GetResult(r.Context(), id)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Rounded())
}

// handleListResults returns the most recent panels
func (a *App) handleListResults(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			a.writeError(w, apperrors.InvalidInput("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	results, err := a.generator.ListRecentResults(r.Context(), limit)
	if err != nil {
		a.writeError(w, err)
		return
	}

	rounded := make([]abg.BloodGasResult, len(results))
	for i, result := range results {
		rounded[i] = result.Rounded()
	}
	writeJSON(w, http.StatusOK, rounded)
}

// handleResultReport renders a teaching case as HTML
func (a *App) handleResultReport(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseResultID(chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, apperrors.InvalidInput(err.Error()))
		return
	}

	result, err := a.generator.GetResult(r.Context(), id)
	if err != nil {
		a.writeError(w, err)
		return
	}

	page := RenderHTML(TeachingCaseMarkdown(result.Rounded()))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// handleGenerateBatch produces a cohort, optionally exporting it
func (a *App) handleGenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, apperrors.InvalidInput("invalid request body: "+err.Error()))
		return
	}
	if req.Count <= 0 || req.Count > a.config.Generation.MaxBatchSize {
		a.writeError(w, apperrors.InvalidInput(
			"count must be between 1 and "+strconv.Itoa(a.config.Generation.MaxBatchSize)))
		return
	}

	template, err := req.toAppRequest()
	if err != nil {
		a.writeError(w, err)
		return
	}

	batch, err := a.batches.GenerateBatch(r.Context(), app.BatchRequest{
		Template:       template,
		Count:          req.Count,
		Seed:           req.Seed,
		MaxConcurrency: a.config.Generation.BatchConcurrency,
	})
	if err != nil {
		a.writeError(w, err)
		return
	}

	response := map[string]interface{}{
		"batch_id":   batch.BatchID,
		"summary":    batch.Summary,
		"runtime_ms": batch.RuntimeMS,
		"results":    roundAll(batch.Results),
	}

	if req.Export != "" {
		name := batch.BatchID.String() + "." + req.Export
		path := filepath.Join(a.config.Export.Dir, name)
		writer := excel.NewBatchWriter(path)
		if err := writer.Write(batch.Results); err != nil {
			a.writeError(w, apperrors.ExportError("failed to export batch", err))
			return
		}
		response["export_path"] = path
	}

	writeJSON(w, http.StatusCreated, response)
}

// handleListConditions returns the full condition catalog
func (a *App) handleListConditions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.All())
}

// handleGetCondition returns one condition's effect profile
func (a *App) handleGetCondition(w http.ResponseWriter, r *http.Request) {
	condition, err := abg.ParseClinicalCondition(chi.URLParam(r, "condition"))
	if err != nil {
		a.writeError(w, apperrors.InvalidInput(err.Error()))
		return
	}

	effect, err := catalog.Effect(condition)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, effect)
}

func roundAll(results []abg.BloodGasResult) []abg.BloodGasResult {
	rounded := make([]abg.BloodGasResult, len(results))
	for i, result := range results {
		rounded[i] = result.Rounded()
	}
	return rounded
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrNotFound),
		errors.Is(err, core.ErrResultNotFound),
		errors.Is(err, core.ErrConditionNotFound):
		status = http.StatusNotFound
	case apperrors.GetCode(err) == apperrors.CodeInvalidInput,
		apperrors.GetCode(err) == apperrors.CodeValidationError:
		status = http.StatusBadRequest
	case core.IsDomainError(err),
		core.IsModeError(err),
		errors.Is(err, core.ErrEmptyConditions),
		errors.Is(err, core.ErrInvalidDisorder),
		errors.Is(err, core.ErrInvalidSeverity):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		a.logger.Error("request failed: %v", err)
	}
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  apperrors.GetCode(err),
	})
}
