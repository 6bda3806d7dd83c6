package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gossdb"
	"gossdb/proto"
	"gossdb/settings"
)

var (
	cfgFile string
	host    string
	port    int
	auth    string
)

var rootCmd = &cobra.Command{
	Use:   "gossdb-cli",
	Short: "Interactive command line client for SSDB",
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := gossdb.DefaultOptions()
		if cfgFile != "" {
			if err := settings.Init(cfgFile); err != nil {
				return err
			}
			opt = gossdb.OptionsFromSettings(settings.Conf)
		}
		if cmd.Flags().Changed("host") {
			opt.Host = host
		}
		if cmd.Flags().Changed("port") {
			opt.Port = port
		}
		if auth != "" {
			opt.Auth = auth
		}
		return repl(opt)
	},
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "path to a gossdb yaml config file")
	rootCmd.Flags().StringVar(&host, "host", gossdb.DefaultHost, "server host")
	rootCmd.Flags().IntVar(&port, "port", gossdb.DefaultPort, "server port")
	rootCmd.Flags().StringVar(&auth, "auth", "", "auth password")
}

func repl(opt *gossdb.Options) error {
	cli := gossdb.New(opt)
	defer cli.Close()

	if err := cli.Ping(); err != nil {
		return fmt.Errorf("failed to connect to %s:%d: %w", opt.Host, opt.Port, err)
	}
	fmt.Printf("connected to ssdb at %s:%d\n", opt.Host, opt.Port)

	stdin := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("ssdb> ")
		line, err := stdin.ReadString('\n')
		if err != nil {
			fmt.Println()
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			fmt.Println("bye")
			return nil
		}

		fields := strings.Fields(line)
		args := make([]interface{}, len(fields)-1)
		for i, f := range fields[1:] {
			args[i] = f
		}
		res, err := cli.Do(fields[0], args...)
		if err != nil {
			fmt.Println("(error)", err)
			continue
		}
		printReply(res)
	}
}

func printReply(v interface{}) {
	switch val := v.(type) {
	case nil:
		fmt.Println("(nil)")
	case int64:
		fmt.Println(val)
	case float64:
		fmt.Println(val)
	case []byte:
		fmt.Println(string(val))
	case [][]byte:
		for i, e := range val {
			fmt.Printf("%d) %s\n", i+1, e)
		}
	case []proto.Pair:
		for i, p := range val {
			fmt.Printf("%d) %s = %s\n", i+1, p.Key, p.Value)
		}
	case []proto.IntPair:
		for i, p := range val {
			fmt.Printf("%d) %s = %d\n", i+1, p.Key, p.Value)
		}
	case *proto.Scan:
		for i, p := range val.Pairs {
			fmt.Printf("%d) %s = %s\n", i+1, p.Key, p.Value)
		}
		if val.NextStart != nil {
			fmt.Printf("next: %s\n", val.NextStart)
		}
	case *proto.IntScan:
		for i, p := range val.Pairs {
			fmt.Printf("%d) %s = %d\n", i+1, p.Key, p.Value)
		}
		if val.NextStart != nil {
			fmt.Printf("next: %s\n", val.NextStart)
		}
	default:
		fmt.Printf("%v\n", val)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
