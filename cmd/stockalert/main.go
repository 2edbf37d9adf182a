package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/isafmcl/Integra-o-com-ERP/internal/config"
	"github.com/isafmcl/Integra-o-com-ERP/internal/infra/db"
	infraRepo "github.com/isafmcl/Integra-o-com-ERP/internal/infra/repository"
	"github.com/isafmcl/Integra-o-com-ERP/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "stockalert",
	Short: "Checks for products below their minimum stock and prints the alert report",
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}

	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	inventoryUC := usecase.NewInventoryUsecase(inventoryRepo)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	rows, err := inventoryUC.LowStock(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(rows) == 0 {
		fmt.Fprintln(out, "Nenhum produto com estoque crítico encontrado.")
		return nil
	}

	divider := strings.Repeat("-", 50)

	fmt.Fprintln(out, "=== ALERTA DE ESTOQUE BAIXO ===")
	fmt.Fprintf(out, "Data: %s\n\n", time.Now().Format("02/01/2006 15:04:05"))
	fmt.Fprintln(out, "Produtos com estoque abaixo do mínimo:")
	fmt.Fprintln(out, divider)

	for _, r := range rows {
		fmt.Fprintf(out, "Produto: %s\n", r.Name)
		fmt.Fprintf(out, "Estoque Atual: %d\n", r.Quantity)
		fmt.Fprintf(out, "Estoque Mínimo: %d\n", r.MinStock)
		fmt.Fprintln(out, divider)
	}

	// mail delivery is still simulated, as in the legacy job
	fmt.Fprintln(out, "\nE-mail seria enviado para o responsável!")

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
