package types

// EncodeResult is what CipherService.Encode returns.
type EncodeResult struct {
	Text           string      `json:"text"`
	Letters        int         `json:"letters"`
	StartPositions string      `json:"start_positions"`
	EndPositions   string      `json:"end_positions"`
	Fingerprint    Fingerprint `json:"fingerprint"`
}
