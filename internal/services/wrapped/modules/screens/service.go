package screens

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/louisbranch/wrapped/internal/platform/i18n"
	"github.com/louisbranch/wrapped/internal/services/wrapped/templates"
	"github.com/louisbranch/wrapped/internal/wrapped/assets"
	"github.com/louisbranch/wrapped/internal/wrapped/content"
	"github.com/louisbranch/wrapped/internal/wrapped/countup"
	"github.com/louisbranch/wrapped/internal/wrapped/envelope"
)

// service maps catalog records to screen views. Everything that does not
// depend on the request is computed once at mount.
type service struct {
	catalog *content.Catalog
	assets  *assets.Resolver
	stats   []templates.StatCard
	bubbles []templates.Bubble
}

func newService(catalog *content.Catalog, resolver *assets.Resolver, locale i18n.Locale) (service, error) {
	stats := make([]templates.StatCard, 0, len(catalog.Stats.Items))
	for _, stat := range catalog.Stats.Items {
		card, err := statCard(stat, locale)
		if err != nil {
			return service{}, fmt.Errorf("stat %q: %w", stat.Title, err)
		}
		stats = append(stats, card)
	}
	return service{
		catalog: catalog,
		assets:  resolver,
		stats:   stats,
		bubbles: birthdayBubbles(catalog.Birthday.Bubbles),
	}, nil
}

func statCard(stat content.Stat, locale i18n.Locale) (templates.StatCard, error) {
	card := templates.StatCard{Title: stat.Title, Icon: stat.Icon, Delay: stat.Delay}
	target, ok := stat.Numeric()
	if !ok {
		card.Final = stat.Text()
		return card, nil
	}
	schedule := countup.New(target)
	values := schedule.Values()
	frames := make([]string, len(values))
	for idx, value := range values {
		frames[idx] = locale.FormatInt(value)
	}
	encoded, err := json.Marshal(frames)
	if err != nil {
		return templates.StatCard{}, err
	}
	card.Numeric = true
	card.Final = locale.FormatInt(target)
	card.Initial = card.Final
	if len(frames) > 0 {
		card.Initial = frames[0]
	}
	card.FramesJSON = string(encoded)
	card.IntervalMS = strconv.FormatFloat(float64(schedule.Interval())/float64(time.Millisecond), 'f', 3, 64)
	return card, nil
}

func birthdayBubbles(count int) []templates.Bubble {
	if count <= 0 {
		return nil
	}
	bubbles := make([]templates.Bubble, count)
	for i := range bubbles {
		bubbles[i] = templates.Bubble{
			SizePX:   14 + (i%8)*4,
			LeftPct:  math.Mod(float64(i)*3.4+5, 100),
			Delay:    float64(i) * 0.18,
			Duration: 2 + float64(i%5)*0.25,
		}
	}
	return bubbles
}

func (s service) image(alt string, candidates ...string) templates.ImageView {
	resolved := s.assets.Image(candidates...)
	return templates.ImageView{URL: resolved.URL, Alt: alt, Placeholder: resolved.Placeholder}
}

func (s service) statsView(next string) templates.StatsView {
	cards := make([]templates.StatCard, len(s.stats))
	copy(cards, s.stats)
	return templates.StatsView{Cards: cards, Continue: next}
}

func (s service) musicView(next string) templates.MusicView {
	music := s.catalog.Music
	songs := make([]templates.SongCard, 0, len(music.Songs))
	for _, song := range music.Songs {
		songs = append(songs, templates.SongCard{
			Rank:   song.Rank,
			Title:  song.Title,
			Artist: song.Artist,
			Top:    song.Top,
			Cover:  s.image(song.Title, song.Cover),
		})
	}
	return templates.MusicView{
		Heading:         music.Heading,
		Songs:           songs,
		PlaylistHeading: music.PlaylistHeading,
		Playlist:        s.image(music.PlaylistTitle, music.PlaylistImage),
		PlaylistTitle:   music.PlaylistTitle,
		PlaylistArtist:  music.PlaylistArtist,
		Continue:        next,
	}
}

func entriesView(items []content.Entry, next string) templates.EntriesView {
	entries := make([]templates.EntryView, 0, len(items))
	for _, item := range items {
		entries = append(entries, templates.EntryView{Title: item.Title, Body: item.Body, Icon: item.Icon, Delay: item.Delay})
	}
	return templates.EntriesView{Entries: entries, Continue: next}
}

func (s service) travelView(next string) templates.TravelView {
	travel := s.catalog.Travel
	memories := make([]templates.MemoryView, 0, len(travel.Memories))
	for _, memory := range travel.Memories {
		memories = append(memories, templates.MemoryView{
			Place:   memory.Place,
			Caption: memory.Caption,
			Note:    memory.Note,
			Image:   s.image(memory.Place, memory.Image),
		})
	}
	return templates.TravelView{Intro: travel.Intro, Memories: memories, Continue: next}
}

func (s service) favoriteView(next string) templates.MessageView {
	favorite := s.catalog.Favorite
	return templates.MessageView{Heading: favorite.Heading, Lead: favorite.Lead, Emphasis: favorite.Emphasis, Continue: next}
}

func (s service) birthdayView(next string) templates.BirthdayView {
	birthday := s.catalog.Birthday
	bubbles := make([]templates.Bubble, len(s.bubbles))
	copy(bubbles, s.bubbles)
	return templates.BirthdayView{
		Message: templates.MessageView{Heading: birthday.Heading, Lead: birthday.Lead, Emphasis: birthday.Emphasis, Continue: next},
		Photo:   s.image(birthday.PhotoAlt, birthday.Photo, birthday.FallbackPhoto),
		Bubbles: bubbles,
	}
}

func (s service) letterView(state envelope.State, self string, next string) templates.LetterView {
	letter := s.catalog.Letter
	view := state.View()
	hearts := make([]templates.HeartView, 0, len(view.Hearts))
	for _, heart := range view.Hearts {
		hearts = append(hearts, templates.HeartView{Delay: heart.Delay, OffsetX: heart.OffsetX})
	}
	return templates.LetterView{
		Intro:       letter.Intro,
		Prompt:      letter.Prompt,
		OpenedLabel: letter.OpenedLabel,
		Date:        letter.Date,
		Body:        letter.Body,
		Open:        view.ModalVisible,
		FlapDegrees: view.FlapDegrees,
		LiftPX:      view.LiftPX,
		Hearts:      hearts,
		OpenHref:    self + "?" + state.Open().Query(),
		CloseHref:   self,
		Continue:    next,
	}
}

func (s service) thankYouView(restart string) templates.ThankYouView {
	thanks := s.catalog.ThankYou
	return templates.ThankYouView{
		Message:      thanks.Message,
		Photo:        s.image(thanks.PhotoAlt, thanks.Photo),
		Closing:      thanks.Closing,
		RestartLabel: thanks.RestartLabel,
		RestartHref:  restart,
	}
}
