// Command admin is the interactive flight admin console. It signs in against
// the flight service, persists the session token locally and drives the
// admin view with list/search/add/edit/del commands.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Domenick1991/flightadmin/internal/admin"
	"github.com/Domenick1991/flightadmin/internal/domain"
	"go.uber.org/zap"
)

type terminalNotifier struct{}

func (terminalNotifier) Notify(n admin.Notification) {
	if n.Severity == admin.SeverityDestructive {
		fmt.Printf("!! %s: %s\n", n.Title, n.Description)
		return
	}
	fmt.Printf("%s: %s\n", n.Title, n.Description)
}

type terminalConfirmer struct {
	in *bufio.Reader
}

func (c terminalConfirmer) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// loginNavigator records the redirect the session guard issues so main can
// fall into the login prompt instead of rendering a route.
type loginNavigator struct {
	redirected bool
}

func (n *loginNavigator) NavigateTo(route string) {
	n.redirected = route == admin.LoginRoute
}

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "flight service base URL")
	sessionPath := flag.String("session", defaultSessionPath(), "session file path")
	flag.Parse()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	ctx := context.Background()
	in := bufio.NewReader(os.Stdin)

	store := admin.NewFileSessionStore(*sessionPath)
	notifier := terminalNotifier{}
	confirmer := terminalConfirmer{in: in}

	token, _ := store.Get(admin.SessionTokenKey)
	client := admin.NewClient(*serverURL, token)

	nav := &loginNavigator{}
	view := admin.NewView(client, store, nav, notifier, confirmer, logger)
	view.Mount(ctx)

	if nav.redirected {
		fmt.Print("password: ")
		line, err := in.ReadString('\n')
		if err != nil {
			return
		}
		token, err := client.Login(ctx, strings.TrimSpace(line))
		if err != nil {
			fmt.Printf("login failed: %v\n", err)
			return
		}
		if err := store.Set(admin.SessionTokenKey, token); err != nil {
			fmt.Printf("persist session: %v\n", err)
			return
		}
		nav.redirected = false
		view.Mount(ctx)
	}

	fmt.Println("commands: list, search <term>, add, edit <id>, del <id>, reload, logout, quit")
	for {
		fmt.Print("> ")
		line, err := in.ReadString('\n')
		if err != nil {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			view.SetSearch("")
			printFlights(view)
		case "search":
			view.SetSearch(strings.Join(fields[1:], " "))
			printFlights(view)
		case "add":
			view.OpenCreate()
			promptForm(in, view.Draft())
			view.SubmitCreate(ctx)
		case "edit":
			id, ok := parseID(fields)
			if !ok {
				continue
			}
			flight, found := findFlight(view, id)
			if !found {
				fmt.Println("no such flight in the current list")
				continue
			}
			view.OpenEdit(flight)
			promptForm(in, view.Draft())
			view.SubmitUpdate(ctx)
		case "del":
			id, ok := parseID(fields)
			if !ok {
				continue
			}
			view.Delete(ctx, id)
		case "reload":
			view.Reload(ctx)
			printFlights(view)
		case "logout":
			if err := client.Logout(ctx); err != nil {
				fmt.Printf("logout: %v\n", err)
			}
			if err := store.Clear(admin.SessionTokenKey); err != nil {
				fmt.Printf("clear session: %v\n", err)
			}
			view.Unmount()
			return
		case "quit", "exit":
			view.Unmount()
			return
		default:
			fmt.Println("unknown command")
		}
	}
}

func parseID(fields []string) (int64, bool) {
	if len(fields) < 2 {
		fmt.Println("usage:", fields[0], "<id>")
		return 0, false
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		fmt.Println("invalid id")
		return 0, false
	}
	return id, true
}

func findFlight(view *admin.View, id int64) (domain.Flight, bool) {
	for _, f := range view.Flights() {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Flight{}, false
}

func printFlights(view *admin.View) {
	flights := view.Flights()
	if len(flights) == 0 {
		fmt.Println("no flights")
		return
	}
	fmt.Printf("%-5s %-8s %-14s %-14s %-12s %-7s %-7s %10s %6s %-10s\n",
		"ID", "NUMBER", "FROM", "TO", "DATE", "DEP", "ARR", "PRICE", "SEATS", "AIRCRAFT")
	for _, f := range flights {
		fmt.Printf("%-5d %-8s %-14s %-14s %-12s %-7s %-7s %10.2f %6d %-10s\n",
			f.ID, f.FlightNumber, f.DepartureCity, f.ArrivalCity,
			f.DepartureDate, f.DepartureTime, f.ArrivalTime,
			f.Price, f.AvailableSeats, f.AircraftType)
	}
}

func promptForm(in *bufio.Reader, form *admin.FlightForm) {
	promptField(in, "flight number", &form.FlightNumber)
	promptField(in, "departure city", &form.DepartureCity)
	promptField(in, "arrival city", &form.ArrivalCity)
	promptField(in, "departure date (YYYY-MM-DD)", &form.DepartureDate)
	promptField(in, "departure time (HH:MM)", &form.DepartureTime)
	promptField(in, "arrival time (HH:MM)", &form.ArrivalTime)
	promptField(in, "price", &form.Price)
	promptField(in, "available seats", &form.AvailableSeats)
	promptField(in, "aircraft type", &form.AircraftType)
}

// promptField keeps the current value when the user just presses enter.
func promptField(in *bufio.Reader, label string, value *string) {
	if *value != "" {
		fmt.Printf("%s [%s]: ", label, *value)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := in.ReadString('\n')
	if err != nil {
		return
	}
	line = strings.TrimSpace(line)
	if line != "" {
		*value = line
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".flightadmin", "session.json")
}
