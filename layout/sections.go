package layout

import (
	"strconv"

	"github.com/benoitkugler/infographic/scene"
)

var (
	featureRow = Row{Left: 0.5, ItemWidth: 2.8, Gutter: 0.3}
	statRow    = Row{Left: 0.6, ItemWidth: 1.5, Gutter: 1.0}
	stepRow    = Row{Left: 0.75, ItemWidth: 1.5, Gutter: 1.0}
	columnRow  = Row{Left: 0.5, ItemWidth: 4.3, Gutter: 0.4}
)

const (
	statAnchorShift = 0.6  // from a stat X to the left of its box
	stepAnchorShift = 0.75 // from a step X to the left of its box
	stepRadius      = 0.35
	stepArrowGap    = 0.05
	badgeRadius     = 0.22
	hubWidth        = 6.0
	outputWidth     = 5.0
)

func (b *builder) title(t Title) error {
	if len(t.Lines) == 0 || t.Lines[0] == "" {
		return b.missing("a title is required")
	}
	w := b.canvas.Width()
	box := boxBelow(0.5, b.band.Top-0.5, w-1, 1.5)
	col := orDefault(t.Color, ColorPrimary)
	if err := b.card(box, 0.1, col, col, 3); err != nil {
		return err
	}
	for i, line := range t.Lines {
		f := font{size: 28, bold: true, color: "white"}
		if i == 0 {
			f.size = 32
		}
		if err := b.text(line, scene.Point{X: box.CenterX(), Y: box.Top() - 0.75 - 0.5*float64(i)}, f); err != nil {
			return err
		}
	}
	if t.Subtitle == "" {
		return nil
	}
	return b.text(t.Subtitle, scene.Point{X: box.CenterX(), Y: box.Bottom() - 0.6}, font{size: 14, italic: true, color: ColorGray})
}

func (b *builder) problem(p Problem) error {
	if p.Heading == "" && len(p.Lines) == 0 {
		return nil
	}
	box := boxBelow(0.5, b.band.Top-0.2, b.canvas.Width()-1, 1.8)
	if err := b.card(box, 0.1, ColorRed, ColorRedTint, 2); err != nil {
		return err
	}
	if p.Heading != "" {
		if err := b.text(p.Heading, scene.Point{X: box.CenterX(), Y: box.Top() - 0.5}, font{size: 18, bold: true, color: ColorRed}); err != nil {
			return err
		}
	}
	return b.lines(p.Lines, box.CenterX(), box.Top()-1.0, 0.4, font{size: 12, color: ColorDark})
}

func (b *builder) features(fs Features) error {
	if len(fs.Cards) == 0 {
		return nil
	}
	if err := b.heading(fs.Heading, 0.4); err != nil {
		return err
	}
	const pad = 0.08
	top := b.band.Top - 0.8
	boxes := make([]Box, len(fs.Cards))
	for i := range boxes {
		boxes[i] = boxBelow(featureRow.Offset(i), top, featureRow.ItemWidth, 2.3)
	}
	if err := b.checkRow(boxes, pad); err != nil {
		return err
	}
	for i, card := range fs.Cards {
		if card.Title == "" {
			return b.missing("feature %d has no title", i+1)
		}
		box, col := boxes[i], orDefault(card.Color, ColorPrimary)
		if err := b.card(box, pad, col, ColorLightGray, 2); err != nil {
			return err
		}
		// accent badge, with an optional glyph
		badge := scene.Point{X: box.CenterX(), Y: box.Top() - 0.5}
		if err := b.disc(badge, badgeRadius, col); err != nil {
			return err
		}
		if card.Icon != "" {
			if err := b.text(card.Icon, badge, font{size: 12, bold: true, color: "white"}); err != nil {
				return err
			}
		}
		if err := b.lines(splitLines(card.Title), box.CenterX(), box.Top()-1.0, 0.3, font{size: 13, bold: true, color: ColorDark}); err != nil {
			return err
		}
		if err := b.lines(splitLines(card.Description), box.CenterX(), box.Top()-1.75, 0.25, font{size: 9, color: ColorGray}); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) stats(s Stats) error {
	if len(s.Items) == 0 {
		return nil
	}
	if err := b.heading(s.Heading, 0.4); err != nil {
		return err
	}
	return b.statsRow(s.Items)
}

// statsRow emits a box, a value and a label per item.
func (b *builder) statsRow(items []Stat) error {
	const pad = 0.08
	top := b.band.Top - 0.8
	boxes := make([]Box, len(items))
	for i, it := range items {
		x := statRow.Offset(i)
		if it.X != nil {
			x = *it.X - statAnchorShift
		}
		boxes[i] = boxBelow(x, top, statRow.ItemWidth, 1.4)
	}
	if err := b.checkRow(boxes, pad); err != nil {
		return err
	}
	for i, it := range items {
		if it.Value == "" {
			return b.missing("stat %d has no value", i+1)
		}
		if it.Label == "" {
			return b.missing("stat %q has no label", it.Value)
		}
		box, col := boxes[i], orDefault(it.Color, ColorPrimary)
		if err := b.card(box, pad, col, "white", 3); err != nil {
			return err
		}
		if err := b.text(it.Value, scene.Point{X: box.CenterX(), Y: box.Top() - 0.5}, font{size: 20, bold: true, color: col}); err != nil {
			return err
		}
		if err := b.block(splitLines(it.Label), box.CenterX(), box.Top()-1.05, 0.18, font{size: 9, color: ColorGray}); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) workflow(w Workflow) error {
	if len(w.Steps) == 0 {
		return nil
	}
	if err := b.heading(w.Heading, 0.4); err != nil {
		return err
	}
	return b.stepsRow(w.Steps)
}

// stepsRow emits the numbered steps, then an arrow
// between each pair of consecutive steps.
func (b *builder) stepsRow(steps []Step) error {
	const pad = 0.06
	top := b.band.Top - 2.2
	boxes := make([]Box, len(steps))
	for i, st := range steps {
		x := stepRow.Offset(i)
		if st.X != nil {
			x = *st.X - stepAnchorShift
		}
		boxes[i] = boxBelow(x, top, stepRow.ItemWidth, 1.2)
	}
	if err := b.checkRow(boxes, pad); err != nil {
		return err
	}
	centers := make([]scene.Point, len(steps))
	for i, st := range steps {
		if st.Title == "" {
			return b.missing("step %d has no title", i+1)
		}
		box, col := boxes[i], orDefault(st.Color, ColorPrimary)
		if err := b.card(box, pad, col, ColorLightGray, 2); err != nil {
			return err
		}
		centers[i] = scene.Point{X: box.CenterX(), Y: box.Top() + 0.3}
		if err := b.disc(centers[i], stepRadius, col); err != nil {
			return err
		}
		num := st.Number
		if num == "" {
			num = strconv.Itoa(i + 1)
		}
		if err := b.text(num, centers[i], font{size: 16, bold: true, color: "white"}); err != nil {
			return err
		}
		if err := b.text(st.Title, scene.Point{X: box.CenterX(), Y: box.Top() - 0.35}, font{size: 10, bold: true, color: ColorDark}); err != nil {
			return err
		}
		if err := b.block(splitLines(st.Description), box.CenterX(), box.Top()-0.85, 0.16, font{size: 8, color: ColorGray}); err != nil {
			return err
		}
	}
	for i := 1; i < len(centers); i++ {
		from := centers[i-1].Add(stepRadius+stepArrowGap, 0)
		to := centers[i].Add(-stepRadius-stepArrowGap, 0)
		if from.X >= to.X {
			return b.noSpace("steps %d and %d are too close to be connected", i, i+1)
		}
		if err := b.connector(from, to, headLarge, ColorGray, false); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) fields(fs Fields) error {
	if len(fs.Columns) == 0 {
		return nil
	}
	if err := b.heading(fs.Heading, 0.4); err != nil {
		return err
	}
	const pad = 0.08
	top := b.band.Top - 0.6
	boxes := make([]Box, len(fs.Columns))
	for i := range boxes {
		boxes[i] = boxBelow(columnRow.Offset(i), top, columnRow.ItemWidth, 2.8)
	}
	if err := b.checkRow(boxes, pad); err != nil {
		return err
	}
	for i, col := range fs.Columns {
		if col.Title == "" {
			return b.missing("column %d has no title", i+1)
		}
		box, accent := boxes[i], orDefault(col.Color, ColorGray)
		if err := b.card(box, pad, accent, orDefault(col.Fill, ColorLightGray), 2); err != nil {
			return err
		}
		if err := b.text(col.Title, scene.Point{X: box.CenterX(), Y: box.Top() - 0.3}, font{size: 13, bold: true, color: accent}); err != nil {
			return err
		}
		size, lh := col.FontSize, col.LineHeight
		if size <= 0 {
			size = 9
		}
		if lh <= 0 {
			lh = 0.28
		}
		itemsTop := col.ItemsTop
		if itemsTop <= 0 {
			itemsTop = 0.8
		}
		bullets := make([]string, len(col.Items))
		for j, item := range col.Items {
			bullets[j] = "• " + item
		}
		if err := b.lines(bullets, box.Left()+0.5, box.Top()-itemsTop, lh, font{size: size, color: ColorDark, align: scene.AlignLeft}); err != nil {
			return err
		}
		if err := b.lines(splitLines(col.Note), box.CenterX(), box.Top()-1.85, 0.3, font{size: 8, italic: true, color: ColorGray}); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) architecture(a Architecture) error {
	if len(a.Sources) == 0 && a.Hub == nil {
		return nil
	}
	if err := b.heading(a.Heading, 0.2); err != nil {
		return err
	}
	const pad = 0.08
	top := b.band.Top - 0.6
	sources := make([]Box, len(a.Sources))
	for i := range sources {
		sources[i] = boxBelow(columnRow.Offset(i), top, columnRow.ItemWidth, 1.6)
	}
	if err := b.checkRow(sources, pad); err != nil {
		return err
	}
	for i, src := range a.Sources {
		if src.Title == "" {
			return b.missing("source %d has no title", i+1)
		}
		box := sources[i]
		if err := b.card(box, pad, orDefault(src.Color, ColorPrimary), ColorLightGray, 2); err != nil {
			return err
		}
		if err := b.text(src.Title, scene.Point{X: box.CenterX(), Y: box.Top() - 0.3}, font{size: 11, bold: true, color: ColorDark}); err != nil {
			return err
		}
		if src.Status != "" {
			f := font{size: 9, color: orDefault(src.StatusColor, ColorGray)}
			if err := b.text(src.Status, scene.Point{X: box.CenterX(), Y: box.Top() - 0.65}, f); err != nil {
				return err
			}
		}
		if err := b.lines(splitLines(src.Details), box.CenterX(), box.Top()-0.95, 0.25, font{size: 8, color: ColorGray}); err != nil {
			return err
		}
	}
	if a.Hub == nil {
		return nil
	}
	if a.Hub.Title == "" {
		return b.missing("the hub has no title")
	}
	hub := boxBelow(centered(hubWidth, 0, 1, b.canvas.Width()).Left, b.band.Top-2.5, hubWidth, 1.2)
	if err := b.checkRow([]Box{hub}, pad); err != nil {
		return err
	}
	if err := b.card(hub, pad, ColorSecondary, ColorLightGray, 2); err != nil {
		return err
	}
	if err := b.text(a.Hub.Title, scene.Point{X: hub.CenterX(), Y: hub.Top() - 0.35}, font{size: 11, bold: true, color: ColorDark}); err != nil {
		return err
	}
	if a.Hub.Caption != "" {
		if err := b.text(a.Hub.Caption, scene.Point{X: hub.CenterX(), Y: hub.Top() - 0.7}, font{size: 8, color: ColorGray}); err != nil {
			return err
		}
	}
	b.hub = &hub

	// sources converge to evenly spaced points of the hub top edge
	n := float64(len(sources) + 1)
	for i, box := range sources {
		to := hub.TopAt(float64(i+1) / n)
		if err := b.connector(box.BottomCenter(), to, headSmall, orDefault(a.Sources[i].Color, ColorPrimary), true); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) output(o Output) error {
	if o.Title == "" {
		if o.Caption != "" {
			return b.missing("the output has a caption but no title")
		}
		return nil
	}
	const pad = 0.08
	box := boxBelow(centered(outputWidth, 0, 1, b.canvas.Width()).Left, b.band.Top-0.1, outputWidth, 0.9)
	if err := b.checkRow([]Box{box}, pad); err != nil {
		return err
	}
	if err := b.card(box, pad, ColorGreen, ColorGreenTint, 3); err != nil {
		return err
	}
	if err := b.text(o.Title, scene.Point{X: box.CenterX(), Y: box.Top() - 0.25}, font{size: 11, bold: true, color: ColorDark}); err != nil {
		return err
	}
	if o.Caption != "" {
		if err := b.text(o.Caption, scene.Point{X: box.CenterX(), Y: box.Top() - 0.6}, font{size: 9, color: ColorGray}); err != nil {
			return err
		}
	}
	if b.hub == nil {
		return nil
	}
	return b.connector(b.hub.BottomCenter(), box.TopCenter(), headSmall, ColorGreen, true)
}
