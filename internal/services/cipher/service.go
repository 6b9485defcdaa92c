package cipher

import (
	"io"
	"log"

	"enigma/internal/config"
	"enigma/internal/crypto"
	"enigma/internal/domain"
)

// Service enciphers text for a given machine setting.
type Service struct {
	log *log.Logger
}

// New returns a cipher service. A nil logger discards output.
func New(logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{log: logger}
}

// Fingerprint returns the short identifier of a setting, stable across
// letter case and label spelling.
func Fingerprint(settings domain.Settings) domain.Fingerprint {
	return domain.Fingerprint(crypto.Fingerprint([]byte(config.Canonical(settings))))
}

// Encode filters text to letters and enciphers it from the setting's initial
// positions. Applying Encode to its own output recovers the filtered input.
func (s *Service) Encode(settings domain.Settings, text string) (domain.EncodeResult, error) {
	e, err := config.NewEngine(settings)
	if err != nil {
		return domain.EncodeResult{}, err
	}
	res := domain.EncodeResult{
		StartPositions: e.Positions(),
		Fingerprint:    Fingerprint(settings),
	}
	res.Text = e.Encode(text)
	res.Letters = len(res.Text)
	res.EndPositions = e.Positions()
	s.log.Printf("setting %s: %d letters, %s -> %s", res.Fingerprint, res.Letters, res.StartPositions, res.EndPositions)
	return res, nil
}

// EncodeStream enciphers letters from r to w without buffering the whole
// message. The returned result carries no Text.
func (s *Service) EncodeStream(settings domain.Settings, r io.Reader, w io.Writer) (domain.EncodeResult, error) {
	e, err := config.NewEngine(settings)
	if err != nil {
		return domain.EncodeResult{}, err
	}
	res := domain.EncodeResult{
		StartPositions: e.Positions(),
		Fingerprint:    Fingerprint(settings),
	}
	n, err := e.EncodeStream(r, w)
	res.Letters = n
	res.EndPositions = e.Positions()
	if err != nil {
		return res, err
	}
	s.log.Printf("setting %s: streamed %d letters, %s -> %s", res.Fingerprint, res.Letters, res.StartPositions, res.EndPositions)
	return res, nil
}

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)
