package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ka2n/tadoru/check"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

func InitTools() []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(CheckLinks()))

	return tools
}

func CheckLinks() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"check_links",
			mcp.WithDescription("Check a rendered static site directory for broken internal, anchor and external links"),
			mcp.WithString("site_dir", mcp.Required(), mcp.Description("Root directory of the rendered site")),
			mcp.WithBoolean("check_external", mcp.Description("Probe external URLs over the network")),
			mcp.WithNumber("timeout", mcp.Description("Per-request timeout in seconds for external probes")),
			mcp.WithString("base_url", mcp.Description("Site base URL; matching absolute links are checked as internal")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				SiteDir       string `mapstructure:"site_dir" validate:"required"`
				CheckExternal bool   `mapstructure:"check_external"`
				Timeout       int    `mapstructure:"timeout" validate:"omitempty,min=1"`
				BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			cfg := check.DefaultConfig(args.SiteDir)
			cfg.CheckExternal = args.CheckExternal
			cfg.BaseURL = args.BaseURL
			if args.Timeout > 0 {
				cfg.Timeout = time.Duration(args.Timeout) * time.Second
			}

			checker, err := check.New(cfg)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			report, err := checker.Run(ctx)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			type IssueInfo struct {
				File    string `json:"file"`
				Line    int    `json:"line"`
				Kind    string `json:"kind"`
				URL     string `json:"url,omitempty"`
				Message string `json:"message"`
			}

			result := struct {
				Passed       bool        `json:"passed"`
				FilesScanned int         `json:"files_scanned"`
				TotalIssues  int         `json:"total_issues"`
				Issues       []IssueInfo `json:"issues"`
			}{
				Passed:       report.Passed(),
				FilesScanned: report.FilesScanned,
				TotalIssues:  len(report.Issues),
				Issues:       []IssueInfo{},
			}
			for _, issue := range report.Issues {
				result.Issues = append(result.Issues, IssueInfo{
					File:    issue.File,
					Line:    issue.Line,
					Kind:    issue.Kind.String(),
					URL:     issue.URL,
					Message: issue.Message,
				})
			}

			b, err := json.Marshal(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(string(b)), nil
		}
}
