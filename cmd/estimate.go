package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/omerfdk/sunsizer/config"
	"github.com/omerfdk/sunsizer/core/catalog"
	"github.com/omerfdk/sunsizer/core/engine"
	"github.com/omerfdk/sunsizer/core/model"
	"github.com/omerfdk/sunsizer/infra/logger"
)

var requestPath string

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Compute one estimate from a request file and print the result",
	RunE:  runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&requestPath, "request", "r", "", "JSON file holding the estimate request")
	_ = estimateCmd.MarkFlagRequired("request")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	snap, err := catalog.Load(cfg.Catalog.Dir)
	if err != nil {
		return fmt.Errorf("load catalogs: %w", err)
	}

	data, err := os.ReadFile(requestPath)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	var req model.EstimateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parse request: %w", err)
	}

	eng := engine.New(catalog.NewStore(snap), cfg.Projection, logger.New("estimate-command"))
	result, err := eng.Estimate(req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
