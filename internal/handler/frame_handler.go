package handler

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// FrameHandler serves the Farcaster mini-app discovery manifest and the
// embeddable frame document. Both live at the root, outside the API group.
type FrameHandler struct {
	baseURL string
	tmpl    *template.Template
}

type frameManifest struct {
	AccountAssociation frameAccountAssociation `json:"accountAssociation"`
	MiniApp            frameMiniApp            `json:"miniapp"`
}

type frameAccountAssociation struct {
	Token     string `json:"token"`
	Signature string `json:"signature"`
}

type frameMiniApp struct {
	Version        string     `json:"version"`
	Name           string     `json:"name"`
	IconURL        string     `json:"iconUrl"`
	SplashImageURL string     `json:"splashImageUrl"`
	HomeURL        string     `json:"homeUrl"`
	WebhookURL     *string    `json:"webhookUrl"`
	Description    string     `json:"description"`
	Theme          frameTheme `json:"theme"`
}

type frameTheme struct {
	BackgroundColor string `json:"backgroundColor"`
}

// NewFrameHandler creates the handler. With an empty baseURL the links are
// derived per request from the incoming scheme and host.
func NewFrameHandler(baseURL string) *FrameHandler {
	return &FrameHandler{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tmpl:    template.Must(template.New("frame").Parse(frameHTML)),
	}
}

func (h *FrameHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/.well-known/farcaster.json", h.Manifest)
	e.GET("/frame", h.Frame)
}

func (h *FrameHandler) Manifest(c echo.Context) error {
	base := h.resolveBaseURL(c)
	return c.JSON(http.StatusOK, frameManifest{
		MiniApp: frameMiniApp{
			Version:        "vNext",
			Name:           "Testnet Faucet",
			IconURL:        base + "/icon.svg",
			SplashImageURL: base + "/splash.svg",
			HomeURL:        base + "/frame",
			Description:    "Claim testnet ETH across Sepolia networks, gated by Gitcoin Passport verification.",
			Theme:          frameTheme{BackgroundColor: "#f8fafc"},
		},
	})
}

func (h *FrameHandler) Frame(c echo.Context) error {
	var buf strings.Builder
	if err := h.tmpl.Execute(&buf, map[string]string{"BaseURL": h.resolveBaseURL(c)}); err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}
	return c.HTML(http.StatusOK, buf.String())
}

func (h *FrameHandler) resolveBaseURL(c echo.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := c.Scheme()
	if scheme == "" {
		scheme = "http"
	}
	return scheme + "://" + c.Request().Host
}

const frameHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Testnet Faucet</title>
    <meta property="fc:miniapp" content='{
      "version": "1",
      "imageUrl": "{{.BaseURL}}/frame-image.svg",
      "button": {
        "title": "Claim Test ETH",
        "action": {
          "type": "launch_frame",
          "name": "Testnet Faucet",
          "url": "{{.BaseURL}}/frame",
          "splashImageUrl": "{{.BaseURL}}/splash.svg",
          "splashBackgroundColor": "#f8fafc"
        }
      }
    }' />
    <meta name="description" content="Claim testnet ETH with Gitcoin Passport verification.">
    <meta property="og:title" content="Testnet Faucet">
    <meta property="og:description" content="Get testnet ETH with a Gitcoin Passport score of 10 or higher.">
    <meta property="og:image" content="{{.BaseURL}}/frame-image.svg">
    <meta property="og:url" content="{{.BaseURL}}/frame">
</head>
<body>
    <main>
        <h1>Testnet Faucet</h1>
        <p>Claim a small amount of testnet ETH once per week per network.</p>
        <ul>
            <li>0.001 ETH per claim</li>
            <li>Gitcoin Passport verified</li>
            <li>Base, Ethereum, Arbitrum and Optimism Sepolia</li>
        </ul>
        <a href="{{.BaseURL}}">Open Web App</a>
    </main>
</body>
</html>
`
