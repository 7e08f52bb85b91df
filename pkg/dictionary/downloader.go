package dictionary

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	lexiconRepoOwner = "jpreprocess"
	lexiconRepoName  = "jpreprocess"
)

// EnsureLexicon checks whether a lexicon CSV already exists at path; if
// not, it discovers the latest GitHub release's lexicon asset and
// downloads it there. Adapted from this package's original
// EnsureDictionary/JMdict downloader: same
// local-cache-then-latest-release-asset flow, retargeted at a
// NAIST-JDIC-style lexicon release instead of a JMdict gloss dictionary
// (spec.md §1 scopes dictionary *formats* out, not fetching one).
func EnsureLexicon(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	fmt.Printf("Lexicon not found at %s. Attempting auto-download...\n", path)

	downloadURL, err := getLatestLexiconAssetURL(ctx)
	if err != nil {
		return fmt.Errorf("failed to find latest lexicon release: %w", err)
	}

	fmt.Printf("Downloading from %s...\n", downloadURL)
	return downloadAndExtractLexicon(ctx, downloadURL, path)
}

func getLatestLexiconAssetURL(ctx context.Context) (string, error) {
	apiURL := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", lexiconRepoOwner, lexiconRepoName)
	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "jpreprocess-go")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github api returned status: %s", resp.Status)
	}

	var release struct {
		Assets []struct {
			Name               string `json:"name"`
			BrowserDownloadURL string `json:"browser_download_url"`
		} `json:"assets"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	for _, asset := range release.Assets {
		if strings.Contains(asset.Name, "lexicon") && (strings.HasSuffix(asset.Name, ".csv.tgz") || strings.HasSuffix(asset.Name, ".csv.gz")) {
			return asset.BrowserDownloadURL, nil
		}
	}

	return "", fmt.Errorf("no suitable lexicon asset found in latest release")
}

func downloadAndExtractLexicon(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 30 * time.Minute}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: %s", resp.Status)
	}

	gzReader, err := gzip.NewReader(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	if strings.HasSuffix(url, ".tgz") {
		return extractCSVFromTar(gzReader, destPath)
	}

	outFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()
	_, err = io.Copy(outFile, gzReader)
	return err
}

func extractCSVFromTar(r io.Reader, destPath string) error {
	tarReader := tar.NewReader(r)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			return fmt.Errorf("no csv file found in downloaded archive")
		}
		if err != nil {
			return fmt.Errorf("error reading tar archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg || !strings.HasSuffix(header.Name, ".csv") {
			continue
		}
		outFile, err := os.Create(destPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer outFile.Close()
		_, err = io.Copy(outFile, tarReader)
		return err
	}
}
