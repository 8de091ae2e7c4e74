package handlers

import "net/http"

func NewAPIRouter(analyze *AnalyzeHandler, health *HealthHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", analyze.Analyze)
	mux.HandleFunc("GET /health", health.Health)
	return WithRequestID(mux)
}

func NewClassifierRouter(predict *PredictHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /predict", predict.Predict)
	mux.HandleFunc("GET /health", predict.Health)
	return WithRequestID(mux)
}
