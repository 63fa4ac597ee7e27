package api

const (
	serviceName    = "Book Tracker API with Supabase & Gemini AI"
	serviceVersion = "2.0.0"
)
