package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/iudanet/learnsync/internal/models"
)

// courseBody поля курса, которые показывает CLI
type courseBody struct {
	Modules []struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Content []struct {
			Type  string `json:"type"`
			Title string `json:"title"`
		} `json:"content"`
	} `json:"modules"`
}

func (c *Cli) runCourse(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: learnsync course <course-id>")
	}

	course, found, err := c.content.GetCourseData(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get course: %w", err)
	}
	if !found {
		c.io.Printf("Course %s is not available offline. Open it while online to cache it.\n", args[0])
		return nil
	}

	return courseTemplate.Execute(c.io, newCourseView(course))
}

// newCourseView строит представление курса. Содержимое без модулей показывается только заголовком.
func newCourseView(course *models.Course) courseView {
	view := courseView{
		ID:       course.ID,
		Title:    course.Title,
		CachedAt: course.CachedAt.Local().Format(timeLayout),
	}

	var body courseBody
	if err := json.Unmarshal(course.Raw, &body); err != nil {
		return view
	}
	for _, m := range body.Modules {
		mv := moduleView{ID: m.ID, Title: m.Title}
		for i, item := range m.Content {
			mv.Items = append(mv.Items, itemView{ID: models.ItemID(item.Type, i), Title: item.Title})
		}
		view.Modules = append(view.Modules, mv)
	}
	return view
}

func (c *Cli) runProgress(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: learnsync progress <course-id> <module-id>")
	}
	courseID, moduleID := args[0], args[1]

	progress, found, err := c.content.GetCourseProgress(ctx, courseID, moduleID)
	if err != nil {
		return fmt.Errorf("failed to get progress: %w", err)
	}
	if !found || progress.CompletedItems.Len() == 0 {
		c.io.Printf("No completed items in %s/%s yet.\n", courseID, moduleID)
		return nil
	}

	c.io.Printf("=== Progress %s/%s ===\n", courseID, moduleID)
	for _, item := range progress.CompletedItems.Items() {
		c.io.Printf("✓ %s\n", item)
	}
	c.io.Printf("Updated: %s\n", progress.UpdatedAt.Local().Format(timeLayout))
	return nil
}

func (c *Cli) runComplete(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: learnsync complete <course-id> <module-id> <content-type> <item-index>")
	}
	index, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("invalid item index %q: %w", args[3], err)
	}

	res, err := c.content.MarkItemComplete(ctx, args[0], args[1], args[2], index)
	if err != nil {
		return fmt.Errorf("failed to mark item complete: %w", err)
	}

	itemID := models.ItemID(args[2], index)
	switch {
	case res.ServerSuccess:
		c.io.Printf("✓ %s completed and saved on the server\n", itemID)
	case res.OfflineSuccess:
		c.io.Printf("✓ %s completed offline, it will sync when online\n", itemID)
	default:
		return fmt.Errorf("item %s was not saved", itemID)
	}
	return nil
}
