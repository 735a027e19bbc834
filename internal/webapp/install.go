package webapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RunCommand is the program web-app descriptors launch.
const RunCommand = "web-app-run"

// InstallOptions describes one web app to install.
type InstallOptions struct {
	Name      string
	URL       string
	Icon      string // http(s) URL or local file path
	MimeTypes string // optional, ';'-separated
	// AppsDir is the descriptor directory, usually ~/.local/share/applications.
	AppsDir string
	Client  *http.Client
}

// Installed reports where Install wrote its files.
type Installed struct {
	DesktopPath string
	IconPath    string
}

// DefaultAppsDir returns ~/.local/share/applications.
func DefaultAppsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "applications"), nil
}

// Install fetches the icon and writes an executable descriptor that opens
// opts.URL through RunCommand.
func Install(ctx context.Context, opts InstallOptions) (*Installed, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}
	iconsDir := filepath.Join(opts.AppsDir, "icons")
	if err := os.MkdirAll(iconsDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", iconsDir, err)
	}

	iconPath := filepath.Join(iconsDir, opts.Name+".png")
	if isRemote(opts.Icon) {
		if err := download(ctx, opts.Client, opts.Icon, iconPath); err != nil {
			return nil, err
		}
	} else if err := copyFile(opts.Icon, iconPath); err != nil {
		return nil, fmt.Errorf("copy icon %s → %s: %w", opts.Icon, iconPath, err)
	}

	desktopPath := filepath.Join(opts.AppsDir, opts.Name+".desktop")
	body := DesktopFile(opts.Name, opts.URL, iconPath, opts.MimeTypes)
	if err := os.WriteFile(desktopPath, []byte(body), 0o644); err != nil {
		return nil, fmt.Errorf("cannot write %s: %w", desktopPath, err)
	}
	if err := os.Chmod(desktopPath, 0o755); err != nil {
		return nil, fmt.Errorf("cannot make %s executable: %w", desktopPath, err)
	}
	return &Installed{DesktopPath: desktopPath, IconPath: iconPath}, nil
}

// DesktopFile renders the descriptor for a web app.
func DesktopFile(name, url, iconPath, mimeTypes string) string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Version=1.0\n")
	fmt.Fprintf(&b, "Name=%s\n", name)
	fmt.Fprintf(&b, "Comment=%s Web App\n", name)
	fmt.Fprintf(&b, "Exec=%s %s\n", RunCommand, url)
	b.WriteString("Terminal=false\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Icon=%s\n", iconPath)
	b.WriteString("StartupNotify=true\n")
	if m := strings.TrimSpace(mimeTypes); m != "" {
		fmt.Fprintf(&b, "MimeType=%s\n", m)
	}
	return b.String()
}

func validate(opts InstallOptions) error {
	switch {
	case strings.TrimSpace(opts.Name) == "":
		return errors.New("app name is required")
	case strings.ContainsRune(opts.Name, '/'):
		return fmt.Errorf("app name %q must not contain '/'", opts.Name)
	case strings.TrimSpace(opts.URL) == "":
		return errors.New("app URL is required")
	case strings.TrimSpace(opts.Icon) == "":
		return errors.New("icon URL or path is required")
	case opts.AppsDir == "":
		return errors.New("applications directory is required")
	}
	return nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func download(ctx context.Context, client *http.Client, url, dest string) error {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "launchkit")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Failed to download icon: %s", resp.Status)
	}
	return writeFileFromReader(dest, resp.Body, 0o644)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	return writeFileFromReader(dst, in, 0o644)
}

func writeFileFromReader(path string, r io.Reader, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
