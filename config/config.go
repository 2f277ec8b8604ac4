package config

type AppConfig struct {
	APIPort string `env:"PORT" envDefault:"8000"`
}

type GeminiConfig struct {
	ApiKey         string `env:"GOOGLE_API_KEY,required"`
	Model          string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Url            string `env:"GEMINI_API_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	TimeoutSeconds int    `env:"GEMINI_TIMEOUT_SECONDS" envDefault:"30"`
}

type TriageConfig struct {
	// MaxBodyRunes bounds how much email body is handed to the model.
	MaxBodyRunes int `env:"TRIAGE_MAX_BODY_RUNES" envDefault:"4000"`
	// SubjectMarkers are the line prefixes used to recover a subject embedded
	// in the raw body, comma separated.
	SubjectMarkers []string `env:"TRIAGE_SUBJECT_MARKERS" envDefault:"Subject,Asunto" envSeparator:","`
}
