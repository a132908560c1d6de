package tui

const Logo = `
 ▄▄▄▄▄▄  ▄▄    ▄▄  ▄▄▄▄▄▄▄   ▄▄▄▄▄▄▄▄  ▄▄▄▄▄▄▄
██▀▀▀▀█  ██    ██  ██▀▀▀▀██  ██▀▀▀▀▀▀  ██▀▀▀▀██
▀██▄▄▄   ██    ██  ██▄▄▄▄██  ██▄▄▄▄▄   ██▄▄▄▄█▀
  ▀▀▀▀█▄ ██    ██  ██▀▀▀▀▀   ██▀▀▀▀▀   ██▀▀▀▀█▄
█▄▄▄▄██▀ ▀██▄▄██▀  ██        ██▄▄▄▄▄▄  ██    ██
 ▀▀▀▀▀▀    ▀▀▀▀    ▀▀        ▀▀▀▀▀▀▀▀  ▀▀    ▀▀`

func (m *Model) SplashView() string {
	return m.theme.Heading().Render(Logo)
}
