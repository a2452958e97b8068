package transcription

// Request holds parameters for a transcription call.
type Request struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string `json:"audio_path"`
	// Language is the expected language of the audio (e.g. "en").
	Language string `json:"language,omitempty"`
	// Model overrides the provider's default transcription model.
	Model string `json:"model,omitempty"`
}

// Response holds the result of a transcription call.
type Response struct {
	// Text is the full transcription text.
	Text string `json:"text"`
	// Language is the detected or specified language.
	Language string `json:"language,omitempty"`
	// Duration is the audio duration in seconds, when reported.
	Duration float64 `json:"duration,omitempty"`
}
