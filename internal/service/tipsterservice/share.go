package tipsterservice

import (
	"bytes"
	"context"
	"html/template"
	"math"
	"strconv"

	"github.com/GlebRadaev/tipsters/internal/betting"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var sharePage = template.Must(template.New("share").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <meta property="og:title" content="{{.Title}}" />
    <meta property="og:description" content="{{.Description}}" />
    <meta property="og:url" content="{{.ShareURL}}" />
    <meta property="og:type" content="website" />
    <meta property="og:site_name" content="Tipsters Race" />
    <meta property="og:image" content="{{.ImageURL}}" />
    <meta property="og:image:secure_url" content="{{.ImageURL}}" />
    <meta property="og:image:type" content="image/jpeg" />
    <meta property="og:image:width" content="1200" />
    <meta property="og:image:height" content="630" />
    <meta name="twitter:card" content="summary_large_image" />
    <meta name="twitter:title" content="{{.Title}}" />
    <meta name="twitter:description" content="{{.Description}}" />
    <meta name="twitter:image" content="{{.ImageURL}}" />
    <meta http-equiv="refresh" content="2; url={{.RedirectURL}}" />
  </head>
  <body style="font-family: sans-serif; display: flex; align-items: center; justify-content: center; height: 100vh; background: #0f172a; color: white;">
    <div style="text-align: center;">
      <h1 style="color: #fbbf24; font-size: 24px; margin-bottom: 10px;">Reindirizzamento a Tipsters Race...</h1>
      <p style="color: #94a3b8;">Ti stiamo portando al profilo di <strong>{{.Name}}</strong></p>
      <p style="font-size: 14px; margin-top: 20px;">Se non vieni reindirizzato, <a href="{{.RedirectURL}}" style="color: #fbbf24;">clicca qui</a>.</p>
    </div>
  </body>
</html>
`))

var numbers = message.NewPrinter(language.English)

type shareData struct {
	Title       string
	Description string
	Name        string
	ShareURL    string
	ImageURL    string
	RedirectURL string
}

// SharePage renders the Open Graph page social bots read before the browser
// is sent on to the public profile. Unknown tipsters and lookup failures get
// a generic page pointing at the leaderboard.
func (s *Service) SharePage(ctx context.Context, tipsterID int) ([]byte, error) {
	data := shareData{
		Name:        defaultName,
		ShareURL:    s.siteURL + "/api/share/tipster/" + strconv.Itoa(tipsterID),
		ImageURL:    s.siteURL + "/stadium-share.jpg",
		RedirectURL: s.siteURL + "/tipsters",
	}
	var balance int64

	tipster, err := s.userRepo.FindTipster(ctx, tipsterID)
	if err != nil {
		zap.L().Error("failed to get tipster for share page", zap.Int("tipsterID", tipsterID), zap.Error(err))
	}
	if tipster != nil {
		data.Name = Name(*tipster)
		data.RedirectURL = s.siteURL + "/tipster/" + strconv.Itoa(tipsterID)
		balance = int64(math.Floor(tipster.Balance))
	}

	if betting.IsAdvisor(float64(balance)) {
		data.Title = "🏆 Segui " + data.Name + ", Advisor Certificato"
	} else {
		data.Title = "⚽ Pronostici di " + data.Name + " - Tipsters Race"
	}
	data.Description = numbers.Sprintf("Saldo attuale: GP %d | Unisciti alla Tipsters Race e segui le migliori schedine!", balance)

	var buf bytes.Buffer
	if err := sharePage.Execute(&buf, data); err != nil {
		zap.L().Error("failed to render share page", zap.Error(err))
		return nil, err
	}
	return buf.Bytes(), nil
}
