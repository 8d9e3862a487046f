package frontmatter

import "github.com/spf13/cast"

// FrontMatter holds the recognized per-page metadata keys. Every key the site
// does not recognize passes through opaquely in Extra so templates can still
// reach arbitrary metadata.
type FrontMatter struct {
	Title           string
	Difficulty      string
	Version         string
	PrevLesson      string
	PrevLessonTitle string
	NextLesson      string
	NextLessonTitle string
	Layout          string
	Lang            string
	Extra           map[string]any
}

// FromFields lifts recognized keys out of a parsed frontmatter map. Scalar
// values are coerced loosely (a numeric version like `1.0` still becomes a
// string), matching how YAML authors actually write these files.
func FromFields(fields map[string]any) *FrontMatter {
	fm := &FrontMatter{Extra: map[string]any{}}
	for key, value := range fields {
		switch key {
		case "title":
			fm.Title = cast.ToString(value)
		case "difficulty":
			fm.Difficulty = cast.ToString(value)
		case "version":
			fm.Version = cast.ToString(value)
		case "prev_lesson":
			fm.PrevLesson = cast.ToString(value)
		case "prev_lesson_title":
			fm.PrevLessonTitle = cast.ToString(value)
		case "next_lesson":
			fm.NextLesson = cast.ToString(value)
		case "next_lesson_title":
			fm.NextLessonTitle = cast.ToString(value)
		case "layout":
			fm.Layout = cast.ToString(value)
		case "lang":
			fm.Lang = cast.ToString(value)
		default:
			fm.Extra[key] = value
		}
	}
	return fm
}

// Map flattens the front matter back into a single map for template contexts.
// Recognized keys shadow Extra entries of the same name.
func (fm *FrontMatter) Map() map[string]any {
	out := make(map[string]any, len(fm.Extra)+9)
	for k, v := range fm.Extra {
		out[k] = v
	}
	out["title"] = fm.Title
	out["difficulty"] = fm.Difficulty
	out["version"] = fm.Version
	out["prev_lesson"] = fm.PrevLesson
	out["prev_lesson_title"] = fm.PrevLessonTitle
	out["next_lesson"] = fm.NextLesson
	out["next_lesson_title"] = fm.NextLessonTitle
	out["layout"] = fm.Layout
	out["lang"] = fm.Lang
	return out
}
