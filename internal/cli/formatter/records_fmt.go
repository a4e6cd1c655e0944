package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/alexanderramin/tenement/internal/listview"
)

// pills maps status-like column keys to their colored renderers.
var pills = map[string]func(string) string{
	"tenement_status": TenementStatusPill,
	"status":          UserStatusPill,
}

// FormatList renders filtered list rows inside a bordered box. The footer
// shows how many of total records are visible.
func FormatList[R any](title string, t listview.Table[R], rows []listview.Row[R], total int) string {
	if len(rows) == 0 {
		return RenderBox(title, RenderEmpty("符合條件的資料"))
	}

	styles := make([]func(string) string, len(t.Columns))
	for i, c := range t.Columns {
		styles[i] = pills[c.Key]
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			switch {
			case i < len(styles) && styles[i] != nil:
				cells[i] = styles[i](c)
			default:
				cells[i] = Dash(c)
			}
		}
		out = append(out, cells)
	}

	table := RenderTable(t.Titles(), out)
	footer := Dim(fmt.Sprintf("%d / %d 筆", len(rows), total))
	return RenderBox(title, table+"\n"+footer)
}

// FormatNotices renders a notice list. Keys are shown so a row can be
// addressed on the command line before it has a server id.
func FormatNotices(title string, notices []domain.Notice) string {
	if len(notices) == 0 {
		return RenderBox(title, RenderEmpty("提醒事項"))
	}
	headers := []string{"ID", "拜訪日期", "紀錄", "提醒日期", "提醒事項"}
	rows := make([][]string, 0, len(notices))
	for _, n := range notices {
		id := n.ID
		if id == "" {
			id = StyleYellow.Render("new")
		}
		rows = append(rows, []string{id, Dash(n.VisitDate), Dash(n.Record), Dash(n.RemindDate), Dash(n.Remind)})
	}
	return RenderBox(title, strings.TrimRight(RenderTable(headers, rows), "\n"))
}

// FormatCalendar renders the events of one month, one line per event.
// Days without events are skipped.
func FormatCalendar(year, month int, days []domain.CalendarDay) string {
	title := fmt.Sprintf("%d 年 %d 月", year, month)
	var rows [][]string
	for _, d := range days {
		for i, e := range d.Events {
			day := ""
			if i == 0 {
				day = StyleBold.Render(strconv.Itoa(d.Day))
			}
			class := ""
			if e.Class != "" {
				class = StylePurple.Render(e.Class)
			}
			rows = append(rows, []string{day, e.Content, class, Dim(e.ID)})
		}
	}
	if len(rows) == 0 {
		return RenderBox(title, RenderEmpty("行程"))
	}
	return RenderBox(title, strings.TrimRight(RenderTable([]string{"日", "內容", "類別", "ID"}, rows), "\n"))
}

// FormatRole renders the signed-in account and its role.
func FormatRole(account string, role domain.Role) string {
	badge := StyleBlue.Render("一般使用者")
	if role.IsAdmin {
		badge = StyleHeader.Render("管理員")
	}
	if account == "" {
		return badge
	}
	return Bold(account) + "  " + badge
}
