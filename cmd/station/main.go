package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jvalencia/surtido-api/internal/application/entry"
	"github.com/jvalencia/surtido-api/internal/infrastructure/apiclient"
	"github.com/jvalencia/surtido-api/internal/interfaces/station"
	"github.com/jvalencia/surtido-api/pkg/config"
)

// El puesto de captura: terminal conectada a la API donde el operario arma la
// lista con escáner o teclado. Se elige la lista con -list; si no existe se
// crea.
func main() {
	listName := flag.String("list", "", "nombre de la lista de trabajo (vacío: la más reciente)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	client := apiclient.New(cfg.Station.APIBaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	listID, name, err := resolveList(ctx, client, *listName)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "resolver lista de trabajo:", err)
		os.Exit(1)
	}

	err = station.Run(context.Background(), entry.Config{
		ListID:          listID,
		ManualDelay:     cfg.Station.ManualDelay,
		BarcodeDelay:    cfg.Station.BarcodeDelay,
		DefaultQuantity: cfg.Station.DefaultQuantity,
	}, station.Deps{
		Lookup:   apiclient.NewProductLookup(client),
		Items:    apiclient.NewItemWriter(client, listID),
		Snapshot: apiclient.NewSnapshotLoader(client, listID),
	}, name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "puesto de captura:", err)
		os.Exit(1)
	}
}

// resolveList busca la lista por nombre, o toma la primera disponible si no se
// indicó nombre. Si el nombre no existe, crea la lista.
func resolveList(ctx context.Context, client *apiclient.Client, name string) (string, string, error) {
	lists, err := client.Lists(ctx)
	if err != nil {
		return "", "", err
	}

	if name == "" {
		if len(lists) == 0 {
			return "", "", fmt.Errorf("no hay listas; cree una con -list <nombre>")
		}
		return lists[0].ID, lists[0].Name, nil
	}

	for _, l := range lists {
		if l.Name == name {
			return l.ID, l.Name, nil
		}
	}

	created, err := client.CreateList(ctx, name)
	if err != nil {
		return "", "", err
	}
	return created.ID, created.Name, nil
}
