package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const heartPath = `<path d="M 25 12 Q 15 8, 12 18 Q 12 25, 25 38 Q 38 25, 38 18 Q 35 8, 25 12" fill="#FF8FA3" stroke="#FFD1DC" stroke-width="2"></path>`

var iconSVG = map[string]string{
	"heart":         `<svg class="icon" width="40" height="40" viewBox="0 0 50 50" fill="none">` + heartPath + `</svg>`,
	"star":          `<svg class="icon" width="32" height="32" viewBox="0 0 24 24"><path d="M12 2 L14.9 8.6 L22 9.3 L16.6 14 L18.2 21 L12 17.3 L5.8 21 L7.4 14 L2 9.3 L9.1 8.6 Z" fill="#FFE5B4" stroke="#FFB6C1" stroke-width="1"></path></svg>`,
	"paperclip":     `<svg width="24" height="40" viewBox="0 0 24 40" fill="none"><path d="M 12 2 C 8 2, 4 6, 4 10 L 4 28 C 4 32, 8 36, 12 36 C 16 36, 20 32, 20 28 L 20 10 C 20 8, 18 6, 16 6 C 14 6, 12 8, 12 10 L 12 28 C 12 30, 14 32, 16 32 C 18 32, 20 30, 20 28 L 20 10" stroke="#C0C0C0" stroke-width="3" fill="none" stroke-linecap="round"></path></svg>`,
	"cat":           `<svg class="icon" width="48" height="48" viewBox="0 0 50 50"><circle cx="25" cy="28" r="14" fill="#D4F1F4"></circle><path d="M13 20 L15 8 L22 16 Z M37 20 L35 8 L28 16 Z" fill="#D4F1F4"></path><circle cx="20" cy="27" r="2" fill="#555"></circle><circle cx="30" cy="27" r="2" fill="#555"></circle><path d="M23 32 Q25 34 27 32" stroke="#FF8FA3" stroke-width="1.5" fill="none"></path></svg>`,
	"bunny":         `<svg class="icon" width="48" height="48" viewBox="0 0 50 50"><ellipse cx="19" cy="12" rx="4" ry="10" fill="#FFF0F5"></ellipse><ellipse cx="31" cy="12" rx="4" ry="10" fill="#FFF0F5"></ellipse><circle cx="25" cy="30" r="13" fill="#FFF0F5" stroke="#FFD1DC"></circle><circle cx="21" cy="29" r="1.8" fill="#555"></circle><circle cx="29" cy="29" r="1.8" fill="#555"></circle></svg>`,
	"dog":           `<svg class="icon" width="48" height="48" viewBox="0 0 50 50"><circle cx="25" cy="27" r="14" fill="#FFE5B4"></circle><ellipse cx="12" cy="24" rx="5" ry="9" fill="#E8C39E"></ellipse><ellipse cx="38" cy="24" rx="5" ry="9" fill="#E8C39E"></ellipse><circle cx="20" cy="25" r="2" fill="#555"></circle><circle cx="30" cy="25" r="2" fill="#555"></circle><ellipse cx="25" cy="31" rx="3" ry="2" fill="#555"></ellipse></svg>`,
	"bear":          `<svg class="icon" width="48" height="48" viewBox="0 0 50 50"><circle cx="14" cy="14" r="6" fill="#E8C39E"></circle><circle cx="36" cy="14" r="6" fill="#E8C39E"></circle><circle cx="25" cy="27" r="15" fill="#E8C39E"></circle><circle cx="20" cy="25" r="2" fill="#555"></circle><circle cx="30" cy="25" r="2" fill="#555"></circle><ellipse cx="25" cy="32" rx="5" ry="4" fill="#FFE5B4"></ellipse></svg>`,
	"crown":         `<svg class="icon" width="36" height="28" viewBox="0 0 36 28"><path d="M2 24 L5 6 L13 14 L18 2 L23 14 L31 6 L34 24 Z" fill="#FFD700" stroke="#FFB6C1" stroke-width="1.5"></path></svg>`,
	"music":         `<svg class="icon" width="28" height="28" viewBox="0 0 24 24"><path d="M9 18 V5 L21 3 V16" stroke="#FF8FA3" stroke-width="2" fill="none"></path><circle cx="6" cy="18" r="3" fill="#FF8FA3"></circle><circle cx="18" cy="16" r="3" fill="#FF8FA3"></circle></svg>`,
	"play":          `<svg width="24" height="24" viewBox="0 0 24 24"><path d="M8 5 L19 12 L8 19 Z" fill="#FF8FA3"></path></svg>`,
	"pause":         `<svg width="24" height="24" viewBox="0 0 24 24"><rect x="6" y="5" width="4" height="14" rx="1" fill="#FF8FA3"></rect><rect x="14" y="5" width="4" height="14" rx="1" fill="#FF8FA3"></rect></svg>`,
	"photo":         `<svg class="icon" width="48" height="48" viewBox="0 0 24 24"><rect x="3" y="5" width="18" height="14" rx="2" fill="none" stroke="#FFB6C1" stroke-width="1.5"></rect><circle cx="9" cy="10" r="2" fill="#FFD1DC"></circle><path d="M3 17 L9 12 L14 16 L17 13 L21 17" stroke="#FFB6C1" stroke-width="1.5" fill="none"></path></svg>`,
	"days":          `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><rect x="3" y="5" width="18" height="16" rx="2" fill="#FFF0F5" stroke="#FF8FA3" stroke-width="1.5"></rect><path d="M3 10 H21 M8 3 V7 M16 3 V7" stroke="#FF8FA3" stroke-width="1.5"></path></svg>`,
	"infinity":      `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><path d="M6 12 C6 8 10 8 12 12 C14 16 18 16 18 12 C18 8 14 8 12 12 C10 16 6 16 6 12 Z" stroke="#FF8FA3" stroke-width="2" fill="none"></path></svg>`,
	"laugh":         `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><circle cx="12" cy="12" r="9" fill="#FFE5B4" stroke="#FF8FA3" stroke-width="1.5"></circle><path d="M7 13 Q12 19 17 13 Z" fill="#FF8FA3"></path><path d="M8 9 Q9 8 10 9 M14 9 Q15 8 16 9" stroke="#555" stroke-width="1.2" fill="none"></path></svg>`,
	"heart-shield":  `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><path d="M12 2 L20 5 V11 C20 16 16 20 12 22 C8 20 4 16 4 11 V5 Z" fill="#FFF0F5" stroke="#FF8FA3" stroke-width="1.5"></path><path d="M12 9 Q10 7.5 9 9.5 Q9 11 12 14 Q15 11 15 9.5 Q14 7.5 12 9" fill="#FF8FA3"></path></svg>`,
	"long-distance": `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><circle cx="5" cy="12" r="3" fill="#FFD1DC"></circle><circle cx="19" cy="12" r="3" fill="#B8E6E6"></circle><path d="M8 12 H16" stroke="#FF8FA3" stroke-width="1.5" stroke-dasharray="2,2"></path></svg>`,
	"success":       `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><rect x="4" y="8" width="16" height="12" rx="2" fill="#FFF0F5" stroke="#FF8FA3" stroke-width="1.5"></rect><path d="M9 8 V6 A1 1 0 0 1 10 5 H14 A1 1 0 0 1 15 6 V8" stroke="#FF8FA3" stroke-width="1.5" fill="none"></path></svg>`,
	"trip":          `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><path d="M2 14 L22 6 L18 18 L12 14 L9 19 L9 13 Z" fill="#FFF0F5" stroke="#FF8FA3" stroke-width="1.3"></path></svg>`,
	"cooking":       `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><path d="M4 12 H20 V15 A5 5 0 0 1 15 20 H9 A5 5 0 0 1 4 15 Z" fill="#FFE5B4" stroke="#FF8FA3" stroke-width="1.3"></path><path d="M9 9 Q8 7 9 5 M12 9 Q11 7 12 5 M15 9 Q14 7 15 5" stroke="#FFB6C1" stroke-width="1.2" fill="none"></path></svg>`,
	"hug":           `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><circle cx="8" cy="8" r="3" fill="#FFD1DC"></circle><circle cx="16" cy="8" r="3" fill="#B8E6E6"></circle><path d="M3 20 Q8 12 12 16 Q16 12 21 20" stroke="#FF8FA3" stroke-width="1.5" fill="none"></path></svg>`,
	"rainbow":       `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><path d="M3 18 A9 9 0 0 1 21 18" stroke="#FF8FA3" stroke-width="2" fill="none"></path><path d="M6 18 A6 6 0 0 1 18 18" stroke="#FFE5B4" stroke-width="2" fill="none"></path><path d="M9 18 A3 3 0 0 1 15 18" stroke="#B8E6E6" stroke-width="2" fill="none"></path></svg>`,
	"mountain":      `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><path d="M2 20 L9 8 L13 14 L16 10 L22 20 Z" fill="#D4F1F4" stroke="#FF8FA3" stroke-width="1.3"></path></svg>`,
	"tree":          `<svg class="icon" width="40" height="40" viewBox="0 0 24 24"><circle cx="12" cy="9" r="6" fill="#D4F1F4" stroke="#FF8FA3" stroke-width="1.3"></circle><path d="M12 15 V21" stroke="#E8C39E" stroke-width="2"></path></svg>`,
}

// Icon renders a named inline SVG. Unknown names fall back to a heart.
func Icon(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		svg, ok := iconSVG[name]
		if !ok {
			svg = iconSVG["heart"]
		}
		_, err := io.WriteString(w, svg)
		return err
	})
}
