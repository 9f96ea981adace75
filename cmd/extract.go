/*
Copyright © 2025 pdfchat
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdfchat/pdfchat-be/service"
	"github.com/pdfchat/pdfchat-be/types"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text from local PDF files",
	Long: `Runs the same text extraction the server uses over local PDF files
and writes a .txt sibling next to each input file.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		directory, _ := cmd.Flags().GetString("directory")

		pdfService := service.NewPDFService()

		var paths []string
		switch {
		case filePath != "":
			paths = append(paths, filePath)
		case directory != "":
			entries, err := os.ReadDir(directory)
			if err != nil {
				log.Fatalf("Failed to read directory: %v", err)
			}
			for _, entry := range entries {
				if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
					continue
				}
				paths = append(paths, filepath.Join(directory, entry.Name()))
			}
		default:
			log.Fatal("Either --file or --directory is required")
		}

		for _, path := range paths {
			if err := extractToFile(pdfService, path); err != nil {
				log.Printf("Failed to extract %s: %v", path, err)
				continue
			}
			fmt.Println("Extracted", path)
		}
	},
}

func extractToFile(extractor service.TextExtractor, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc, err := extractor.Extract(context.Background(), types.UploadedFile{
		Name:        filepath.Base(path),
		Data:        data,
		ContentType: types.PDFContentType,
	})
	if err != nil {
		return err
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
	return os.WriteFile(outPath, []byte(doc.Text), 0644)
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("file", "f", "", "Path to a PDF file to extract")
	extractCmd.Flags().String("directory", "", "Path to a directory of PDF files to extract")
}
