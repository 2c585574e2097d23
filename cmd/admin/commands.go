package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"adminconsole/internal/domain/entity"
	"adminconsole/internal/selector"
	"adminconsole/internal/slice"
	"adminconsole/pkg/utils"
)

const usage = `usage: admin <command> [flags]

commands:
  login           sign in (-email, -password; defaults from ADMIN_EMAIL/ADMIN_PASSWORD)
  logout          forget the stored session
  profile         show the signed-in user
  products        list products (-search, -category, -status, -page, -limit)
  upload          upload a product image file
  categories      list categories
  orders          list orders (-status, -customer, -page, -limit)
  order-status    set an order status: order-status <id> <status>
  users           list users (-search, -role, -status)
  banners         list banners
  banner-reorder  reorder banners: banner-reorder <id> <id> ...
  legal           show legal documents, or one: legal <type>
  legal-set       replace a document: legal-set <type> <file>
  dashboard       summary of products, orders and users
  metrics         request metrics of this run, after the given command
`

var errUsage = errors.New("invalid usage")

type command func(ctx context.Context, a *app, args []string) error

var commands map[string]command

func init() {
	commands = map[string]command{
		"login":          cmdLogin,
		"logout":         cmdLogout,
		"profile":        cmdProfile,
		"products":       cmdProducts,
		"upload":         cmdUpload,
		"categories":     cmdCategories,
		"orders":         cmdOrders,
		"order-status":   cmdOrderStatus,
		"users":          cmdUsers,
		"banners":        cmdBanners,
		"banner-reorder": cmdBannerReorder,
		"legal":          cmdLegal,
		"legal-set":      cmdLegalSet,
		"dashboard":      cmdDashboard,
		"metrics":        cmdMetrics,
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(a.out, "unknown command %q\n\n%s", args[0], usage)
		return errUsage
	}
	return cmd(ctx, a, args[1:])
}

func (a *app) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func cmdLogin(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", a.cfg.AdminEmail, "admin email")
	password := fs.String("password", a.cfg.AdminPassword, "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.store.Auth.Login(ctx, entity.Credentials{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", result.User.Username, result.User.Email)
	return nil
}

func cmdLogout(_ context.Context, a *app, _ []string) error {
	a.store.Logout()
	return nil
}

func cmdProfile(ctx context.Context, a *app, _ []string) error {
	user, err := a.store.Auth.FetchProfile(ctx)
	if err != nil {
		return err
	}
	w := a.table()
	fmt.Fprintf(w, "ID\t%s\n", user.ID)
	fmt.Fprintf(w, "Name\t%s\n", user.Name)
	fmt.Fprintf(w, "Username\t%s\n", user.Username)
	fmt.Fprintf(w, "Email\t%s\n", user.Email)
	fmt.Fprintf(w, "Role\t%s\n", user.Role)
	if claims, err := a.session.Claims(); err == nil && claims.ExpiresAt != nil {
		fmt.Fprintf(w, "Session expires\t%s\n", claims.ExpiresAt.Format(time.RFC1123))
	}
	if a.session.IsDemo() {
		fmt.Fprintf(w, "Mode\tdemo\n")
	}
	return w.Flush()
}

func cmdProducts(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	search := fs.String("search", "", "name search")
	category := fs.String("category", "", "category id")
	status := fs.String("status", entity.StatusAll, "all, active or inactive")
	page := fs.Int("page", utils.DefaultPage, "page number")
	limit := fs.Int("limit", utils.DefaultLimit, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	products := a.store.Products
	products.SetFilters(entity.ProductFilterPatch{Search: search, Category: category, Status: status})
	products.SetPagination(utils.PaginationParams{Page: *page, Limit: *limit})
	if err := products.FetchProducts(ctx, nil); err != nil {
		return err
	}

	state := products.State()
	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK\tACTIVE")
	for _, p := range state.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%t\n", p.ID, p.Name, p.Category.Name, p.Price.StringFixed(2), p.Stock, p.IsActive)
	}
	fmt.Fprintf(w, "\npage %d of %d, %d products\n",
		state.Pagination.Page, utils.TotalPages(state.Total, state.Pagination.Limit), state.Total)
	return w.Flush()
}

func cmdUpload(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: admin upload <file>")
		return errUsage
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	url, err := a.store.Products.UploadProductImage(ctx, entity.Upload{
		FieldName: "image",
		Filename:  filepath.Base(args[0]),
		Content:   content,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, url)
	return nil
}

func cmdCategories(ctx context.Context, a *app, _ []string) error {
	if err := a.store.Categories.FetchCategories(ctx); err != nil {
		return err
	}
	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tACTIVE")
	for _, c := range a.store.Categories.State().Items {
		fmt.Fprintf(w, "%s\t%s\t%t\n", c.ID, c.Name, c.IsActive)
	}
	return w.Flush()
}

func cmdOrders(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	status := fs.String("status", entity.StatusAll, "order status or all")
	customer := fs.String("customer", "", "customer id, username or email")
	page := fs.Int("page", utils.DefaultPage, "page number")
	limit := fs.Int("limit", utils.DefaultLimit, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	orders := a.store.Orders
	orders.SetFilters(entity.OrderFilterPatch{Status: status, Customer: customer})
	orders.SetPagination(utils.PaginationParams{Page: *page, Limit: *limit})
	if err := orders.FetchOrders(ctx, nil); err != nil {
		return err
	}

	state := orders.State()
	w := a.table()
	fmt.Fprintln(w, "ID\tNUMBER\tSTATUS\tAMOUNT\tCUSTOMER")
	for _, o := range state.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.OrderNumber, o.Status, o.Amount.StringFixed(2), o.Customer.Username)
	}
	fmt.Fprintf(w, "\n%d orders\n", state.Total)
	return w.Flush()
}

func cmdOrderStatus(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "usage: admin order-status <id> <status>")
		return errUsage
	}
	return a.store.Orders.UpdateOrderStatus(ctx, args[0], entity.OrderStatus(args[1]))
}

func cmdUsers(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	search := fs.String("search", "", "username or email search")
	role := fs.String("role", entity.StatusAll, "admin, customer, user or all")
	status := fs.String("status", entity.StatusAll, "active, inactive or all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	users := a.store.Users
	users.SetFilters(entity.UserFilters{Search: *search, Role: *role, Status: *status})
	if err := users.FetchUsers(ctx); err != nil {
		return err
	}

	state := users.State()
	filtered := selector.FilterUsers(state.Items, state.Filters)
	w := a.table()
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE\tACTIVE")
	for _, u := range filtered {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.Username, u.Email, u.Role, u.IsActive)
	}
	fmt.Fprintf(w, "\n%d of %d users, %d active, %d admins\n",
		len(filtered), len(state.Items), selector.ActiveUserCount(state.Items), selector.RoleCount(state.Items, entity.RoleAdmin))
	return w.Flush()
}

func cmdBanners(ctx context.Context, a *app, _ []string) error {
	if err := a.store.Banners.FetchBanners(ctx); err != nil {
		return err
	}
	banners := a.store.Banners.State().Items
	live := selector.LiveBanners(banners, time.Now())
	liveIDs := make(map[string]bool, len(live))
	for _, b := range live {
		liveIDs[b.ID] = true
	}

	w := a.table()
	fmt.Fprintln(w, "ORDER\tID\tTITLE\tACTIVE\tLIVE")
	for _, b := range banners {
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%t\n", b.Order, b.ID, b.Title, b.IsActive, liveIDs[b.ID])
	}
	return w.Flush()
}

func cmdBannerReorder(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "usage: admin banner-reorder <id> <id> ...")
		return errUsage
	}
	if err := a.store.Banners.FetchBanners(ctx); err != nil {
		return err
	}
	return a.store.Banners.ReorderBanners(ctx, slice.OrderFromIDs(args))
}

func cmdLegal(ctx context.Context, a *app, args []string) error {
	legal := a.store.Legal
	if len(args) == 1 {
		t, err := entity.ParseDocumentType(args[0])
		if err != nil {
			return err
		}
		doc, err := legal.FetchLegalByType(ctx, t)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, doc.Content)
		return nil
	}

	if err := legal.FetchLegalContent(ctx); err != nil {
		return err
	}
	state := legal.State()
	w := a.table()
	fmt.Fprintln(w, "TYPE\tLAST UPDATED\tLENGTH")
	for _, t := range entity.DocumentTypes {
		doc := state.Document(t)
		updated := "-"
		if doc.LastUpdated != nil {
			updated = doc.LastUpdated.Format(time.RFC1123)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", t, updated, len(doc.Content))
	}
	return w.Flush()
}

func cmdLegalSet(ctx context.Context, a *app, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "usage: admin legal-set <type> <file>")
		return errUsage
	}
	t, err := entity.ParseDocumentType(args[0])
	if err != nil {
		return err
	}
	content, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	doc, err := a.store.Legal.UpdateLegalContent(ctx, t, string(content))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s saved (%d characters)\n", t, len(doc.Content))
	return nil
}

func cmdDashboard(ctx context.Context, a *app, _ []string) error {
	a.store.Products.SetPagination(utils.PaginationParams{Limit: utils.MaxLimit})
	a.store.Orders.SetPagination(utils.PaginationParams{Limit: utils.MaxLimit})
	for _, fetch := range []func(context.Context) error{
		func(ctx context.Context) error { return a.store.Products.FetchProducts(ctx, nil) },
		func(ctx context.Context) error { return a.store.Orders.FetchOrders(ctx, nil) },
		a.store.Users.FetchUsers,
	} {
		if err := fetch(ctx); err != nil {
			return err
		}
	}

	stats := selector.Dashboard(
		a.store.Products.State().Items,
		a.store.Orders.State().Items,
		a.store.Users.State().Items,
	)

	w := a.table()
	fmt.Fprintf(w, "Products\t%d (%d active, %d inactive)\n", stats.TotalProducts, stats.ActiveProducts, stats.InactiveProducts)
	fmt.Fprintf(w, "Low stock\t%d\n", stats.LowStockProducts)
	fmt.Fprintf(w, "Out of stock\t%d\n", stats.OutOfStockProducts)
	fmt.Fprintf(w, "Orders\t%d (%d pending)\n", stats.TotalOrders, stats.PendingOrders)
	fmt.Fprintf(w, "Revenue\t%s\n", stats.TotalRevenue.StringFixed(2))
	fmt.Fprintf(w, "Users\t%d\n", stats.TotalUsers)
	fmt.Fprintln(w, "\nRecent products")
	for _, p := range stats.RecentProducts {
		fmt.Fprintf(w, "  %s\t%s\n", p.Name, p.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

// cmdMetrics runs the rest of the command line and then prints the request counters.
func cmdMetrics(ctx context.Context, a *app, args []string) error {
	var runErr error
	if len(args) > 0 {
		runErr = a.run(ctx, args)
	}

	families, err := a.metrics.Registry.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				value = float64(m.GetHistogram().GetSampleCount())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), value))
		}
	}
	sort.Strings(lines)
	fmt.Fprintln(a.out, strings.Join(lines, "\n"))
	return runErr
}
