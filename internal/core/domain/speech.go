package domain

// VoiceSelection picks the synthesized voice.
type VoiceSelection struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name,omitempty"`
	SSMLGender   string `json:"ssmlGender,omitempty"`
}

// AudioConfig controls the encoding of the synthesized audio.
type AudioConfig struct {
	AudioEncoding string  `json:"audioEncoding"`
	SpeakingRate  float64 `json:"speakingRate"`
	Pitch         float64 `json:"pitch"`
}

// TTSRequest is a text-to-speech request. Voice and AudioConfig are
// optional and defaulted by the speech use case.
type TTSRequest struct {
	Text        string          `json:"text"`
	Voice       *VoiceSelection `json:"voice,omitempty"`
	AudioConfig *AudioConfig    `json:"audioConfig,omitempty"`
}

// TTSResponse carries base64 audio and echoes the effective configuration.
type TTSResponse struct {
	AudioContent string         `json:"audioContent"`
	AudioConfig  AudioConfig    `json:"audioConfig"`
	Voice        VoiceSelection `json:"voice"`
}

// DefaultVoice is used when a request names no voice.
var DefaultVoice = VoiceSelection{
	LanguageCode: "en-US",
	Name:         "en-US-Neural2-D",
	SSMLGender:   "NEUTRAL",
}

// DefaultAudioConfig is used when a request carries no audio configuration.
var DefaultAudioConfig = AudioConfig{
	AudioEncoding: "MP3",
	SpeakingRate:  1.0,
	Pitch:         0.0,
}
