package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PhonicsService generates and caches per-letter pronunciation audio.
// Files are fetched once from Google Translate's TTS endpoint (Brazilian
// Portuguese) and served from disk afterwards.
type PhonicsService struct {
	audioDir string
}

const ttsRequestTimeout = 10 * time.Second

// NewPhonicsService creates a phonics service storing MP3s under audioDir.
func NewPhonicsService(audioDir string) *PhonicsService {
	return &PhonicsService{
		audioDir: audioDir,
	}
}

// LetterAudioFile returns the cached MP3 filename for a letter's phonetic
// text, generating it on first use. Returns the filename (not full path).
func (s *PhonicsService) LetterAudioFile(letter, phoneticText string) (string, error) {
	sanitized := strings.ToLower(strings.TrimSpace(letter))
	if sanitized == "" {
		return "", fmt.Errorf("empty letter")
	}

	filename := fmt.Sprintf("letter_%s.mp3", sanitized)
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	if err := s.generateUsingGoogleTTS(phoneticText, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}

	return filename, nil
}

// generateUsingGoogleTTS uses Google Translate's text-to-speech API.
// Free and keyless, good enough for short phonics phrases.
func (s *PhonicsService) generateUsingGoogleTTS(text, outputPath string) error {
	baseURL := "https://translate.google.com/translate_tts"

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "pt")
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	fullURL := baseURL + "?" + params.Encode()

	ctx, cancel := context.WithTimeout(context.Background(), ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Google rejects requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	client := &http.Client{Timeout: ttsRequestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}

// CachedFiles returns all MP3 files currently in the cache directory.
func (s *PhonicsService) CachedFiles() ([]string, error) {
	files, err := os.ReadDir(s.audioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio directory: %w", err)
	}

	var audioFiles []string
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".mp3" {
			audioFiles = append(audioFiles, file.Name())
		}
	}

	return audioFiles, nil
}

// Reset deletes every cached MP3 so the next request regenerates it.
func (s *PhonicsService) Reset() error {
	files, err := s.CachedFiles()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, f := range files {
		if err := os.Remove(filepath.Join(s.audioDir, f)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", f, err)
		}
	}

	return nil
}
