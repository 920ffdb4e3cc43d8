package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/dailylift/dailylift/internal/calc"
)

type ToolsHandler struct{}

func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

type billRequest struct {
	Total      *float64 `json:"total"`
	People     int      `json:"people"`
	TipPercent *float64 `json:"tipPercent"`
}

type billResponse struct {
	*calc.BillSplit
	Display struct {
		PerPerson  string `json:"perPerson"`
		TipAmount  string `json:"tipAmount"`
		GrandTotal string `json:"grandTotal"`
	} `json:"display"`
}

// Bill splits a bill, POST /api/tools/bill
func (h *ToolsHandler) Bill(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if !decode(w, r, &req) {
		return
	}

	split, err := calc.SplitBill(orNaN(req.Total), req.People, orNaN(req.TipPercent))
	if err != nil {
		writeCalcError(w, err)
		return
	}

	resp := billResponse{BillSplit: split}
	resp.Display.PerPerson = calc.FormatMoney(split.PerPerson)
	resp.Display.TipAmount = calc.FormatMoney(split.TipAmount)
	resp.Display.GrandTotal = calc.FormatMoney(split.GrandTotal)
	writeJSON(w, http.StatusOK, resp)
}

type bmiRequest struct {
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
}

// BMI computes body mass index, POST /api/tools/bmi
func (h *ToolsHandler) BMI(w http.ResponseWriter, r *http.Request) {
	var req bmiRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := calc.BMI(orNaN(req.Weight), orNaN(req.Height))
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type convertRequest struct {
	Category string   `json:"category"`
	Value    *float64 `json:"value"`
	From     string   `json:"from"`
	To       string   `json:"to"`
}

type convertResponse struct {
	Result  float64 `json:"result"`
	Display string  `json:"display"`
}

// Convert converts between units, POST /api/tools/convert
func (h *ToolsHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := calc.Convert(req.Category, orNaN(req.Value), req.From, req.To)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, convertResponse{Result: result, Display: calc.FormatResult(result)})
}

// Units lists the conversion table, GET /api/tools/units
func (h *ToolsHandler) Units(w http.ResponseWriter, r *http.Request) {
	units := map[string][]string{}
	for _, c := range calc.Categories() {
		units[c] = calc.Units(c)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": calc.Categories(),
		"units":      units,
	})
}

// orNaN maps a missing number to NaN so validation treats it like an empty form field.
func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(v)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func writeCalcError(w http.ResponseWriter, err error) {
	var verr *calc.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": verr.Message, "field": verr.Field})
		return
	}
	slog.Error("calculator failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
