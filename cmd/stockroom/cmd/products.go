package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourorg/stockroom/internal/forms"
	"github.com/yourorg/stockroom/internal/models"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to the inventory",
	RunE:  runAdd,
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an existing product",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List products matching the given filters",
	RunE:  runList,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered product list as JSON",
	RunE:  runExport,
}

func init() {
	addCmd.Flags().String("name", "", "Product name")
	addCmd.Flags().String("description", "", "Product description")
	addCmd.Flags().Float64("price", 0, "Unit price")
	addCmd.Flags().String("category", "", "Category ("+strings.Join(models.Categories, ", ")+")")
	addCmd.Flags().String("sku", "", "Stock keeping unit")
	addCmd.Flags().Int("stock", 0, "Units in stock")
	addCmd.Flags().String("status", string(models.StatusActive), "active or inactive")
	addCmd.Flags().String("image", "", "Image data URI")
	addCmd.Flags().StringSlice("tags", nil, "Comma-separated tags")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("category")
	_ = addCmd.MarkFlagRequired("sku")

	updateCmd.Flags().String("name", "", "Product name")
	updateCmd.Flags().String("description", "", "Product description")
	updateCmd.Flags().Float64("price", 0, "Unit price")
	updateCmd.Flags().String("category", "", "Category")
	updateCmd.Flags().String("sku", "", "Stock keeping unit")
	updateCmd.Flags().Int("stock", 0, "Units in stock")
	updateCmd.Flags().String("status", "", "active or inactive")
	updateCmd.Flags().String("image", "", "Image data URI")
	updateCmd.Flags().StringSlice("tags", nil, "Comma-separated tags (replaces existing)")

	addFilterFlags(listCmd)
	listCmd.Flags().String("view", string(models.ViewGrid), "grid or list")

	addFilterFlags(exportCmd)
	exportCmd.Flags().String("out", ".", "Directory the export file is written to")

	rootCmd.AddCommand(addCmd, updateCmd, deleteCmd, listCmd, exportCmd)
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "Substring match on name, description, SKU, or tags")
	cmd.Flags().String("category", "", "Exact category match")
	cmd.Flags().String("status", "", "active or inactive")
	cmd.Flags().Float64("min-price", 0, "Inclusive lower price bound")
	cmd.Flags().Float64("max-price", 0, "Inclusive upper price bound")
	cmd.Flags().String("sort", string(models.SortByCreatedAt), "Sort key: name, price, stock, or createdAt")
	cmd.Flags().String("order", string(models.SortDesc), "Sort order: asc or desc")
}

func runAdd(cmd *cobra.Command, _ []string) error {
	price, _ := cmd.Flags().GetFloat64("price")
	stock, _ := cmd.Flags().GetInt("stock")
	tags, _ := cmd.Flags().GetStringSlice("tags")

	form := forms.ProductForm{
		Name:        mustString(cmd, "name"),
		Description: mustString(cmd, "description"),
		Price:       price,
		Category:    mustString(cmd, "category"),
		SKU:         mustString(cmd, "sku"),
		Stock:       stock,
		Status:      models.Status(mustString(cmd, "status")),
		Image:       mustString(cmd, "image"),
		Tags:        tags,
	}
	if err := forms.ValidateStruct(form); err != nil {
		return err
	}

	mgr, err := requireSession()
	if err != nil {
		return err
	}
	p := mgr.AddProduct(form.Request())
	fmt.Printf("Added %s (%s)\n", p.Name, p.ID)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	var req models.UpdateProductRequest
	if cmd.Flags().Changed("name") {
		v := mustString(cmd, "name")
		req.Name = &v
	}
	if cmd.Flags().Changed("description") {
		v := mustString(cmd, "description")
		req.Description = &v
	}
	if cmd.Flags().Changed("price") {
		v, _ := cmd.Flags().GetFloat64("price")
		req.Price = &v
	}
	if cmd.Flags().Changed("category") {
		v := mustString(cmd, "category")
		req.Category = &v
	}
	if cmd.Flags().Changed("sku") {
		v := mustString(cmd, "sku")
		req.SKU = &v
	}
	if cmd.Flags().Changed("stock") {
		v, _ := cmd.Flags().GetInt("stock")
		req.Stock = &v
	}
	if cmd.Flags().Changed("status") {
		v := models.Status(mustString(cmd, "status"))
		req.Status = &v
	}
	if cmd.Flags().Changed("image") {
		v := mustString(cmd, "image")
		req.Image = &v
	}
	if cmd.Flags().Changed("tags") {
		tags, _ := cmd.Flags().GetStringSlice("tags")
		req.Tags = forms.NormalizeTags(tags)
	}

	mgr, err := requireSession()
	if err != nil {
		return err
	}
	mgr.UpdateProduct(args[0], req)
	fmt.Printf("Updated %s\n", args[0])
	return nil
}

func runDelete(_ *cobra.Command, args []string) error {
	mgr, err := requireSession()
	if err != nil {
		return err
	}
	mgr.DeleteProduct(args[0])
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	mgr, err := requireSession()
	if err != nil {
		return err
	}
	mgr.SetFilters(filterPatch(cmd))
	mgr.SetViewMode(models.ViewMode(mustString(cmd, "view")))

	state := mgr.State()
	if len(state.FilteredProducts) == 0 {
		fmt.Println("No products match the current filters")
		return nil
	}
	for _, p := range state.FilteredProducts {
		if state.ViewMode == models.ViewList {
			fmt.Printf("%s  %-24s %-14s %8.2f  %4d in stock  [%s]\n",
				p.ID, p.Name, p.Category, p.Price, p.Stock, p.Status)
			continue
		}
		fmt.Printf("%s — %s (%s) $%.2f\n", p.ID, p.Name, p.SKU, p.Price)
	}
	fmt.Printf("%d of %d products\n", len(state.FilteredProducts), len(state.Products))
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	mgr, err := requireSession()
	if err != nil {
		return err
	}
	mgr.SetFilters(filterPatch(cmd))

	out := mustString(cmd, "out")
	if out == "-" {
		return mgr.WriteFiltered(os.Stdout)
	}
	path, err := mgr.ExportFiltered(out)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d products to %s\n", len(mgr.State().FilteredProducts), path)
	return nil
}

// filterPatch maps only the flags the user actually set, so defaults in the
// manager stay untouched.
func filterPatch(cmd *cobra.Command) models.FilterPatch {
	var patch models.FilterPatch
	if cmd.Flags().Changed("search") {
		v := mustString(cmd, "search")
		patch.Search = &v
	}
	if cmd.Flags().Changed("category") {
		v := mustString(cmd, "category")
		patch.Category = &v
	}
	if cmd.Flags().Changed("status") {
		v := mustString(cmd, "status")
		patch.Status = &v
	}
	if cmd.Flags().Changed("min-price") {
		v, _ := cmd.Flags().GetFloat64("min-price")
		p := &v
		patch.MinPrice = &p
	}
	if cmd.Flags().Changed("max-price") {
		v, _ := cmd.Flags().GetFloat64("max-price")
		p := &v
		patch.MaxPrice = &p
	}
	if cmd.Flags().Changed("sort") {
		v := models.SortKey(mustString(cmd, "sort"))
		patch.SortBy = &v
	}
	if cmd.Flags().Changed("order") {
		v := models.SortOrder(mustString(cmd, "order"))
		patch.SortOrder = &v
	}
	return patch
}
