package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func milkTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handler := NewMilkHandler(nil, nil)
	r.POST("/predict_milk_spoilage", handler.Predict)
	return r
}

func TestMilkPredictRejectsUnknownSKU(t *testing.T) {
	r := milkTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict_milk_spoilage?sku=oat_milk_1qt", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid SKU.", body["error"])
}

func TestMilkPredictReturnsFullPayload(t *testing.T) {
	r := milkTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict_milk_spoilage?sku=skim_milk_1gal", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{"sku", "spoilage_data", "prediction", "probability", "pricing", "explanation"} {
		assert.Contains(t, body, key)
	}

	var sku string
	require.NoError(t, json.Unmarshal(body["sku"], &sku))
	assert.Equal(t, "skim_milk_1gal", sku)
}

func TestMilkPredictDefaultsToWholeMilk(t *testing.T) {
	r := milkTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict_milk_spoilage", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	var sku string
	require.NoError(t, json.Unmarshal(body["sku"], &sku))
	assert.Equal(t, "whole_milk_1gal", sku)
}

func TestMilkPredictIsDeterministicPerSKU(t *testing.T) {
	r := milkTestRouter()

	fetch := func() json.RawMessage {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/predict_milk_spoilage?sku=uht_milk_1qt", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body["spoilage_data"]
	}

	assert.JSONEq(t, string(fetch()), string(fetch()))
}
