package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Show the chili version and build time.",
		Usage: "chili version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}
