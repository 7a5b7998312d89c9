package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"golang.org/x/sys/unix"

	"github.com/mmastrac/proc-pidinfo/internal/render"
	"github.com/mmastrac/proc-pidinfo/internal/tui"
	"github.com/mmastrac/proc-pidinfo/pkg/procinfo"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "pidinfo",
		Usage:   "inspect processes through the Darwin proc_info interface",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "show BSD and task info for a process",
				ArgsUsage: "[pid]",
				Action:    cmdInfo,
			},
			{
				Name:      "fds",
				Usage:     "list open file descriptors, resolving vnode paths",
				ArgsUsage: "[pid]",
				Action:    cmdFDs,
			},
			{
				Name:      "fileports",
				Usage:     "list Mach fileports, resolving vnode paths",
				ArgsUsage: "[pid]",
				Action:    cmdFileports,
			},
			{
				Name:      "path",
				Usage:     "print the executable path of a process",
				ArgsUsage: "[pid]",
				Action:    cmdPath,
			},
			{
				Name:   "ps",
				Usage:  "list all visible processes",
				Action: cmdPS,
			},
			{
				Name:      "watch",
				Usage:     "interactively watch a process's descriptor table",
				ArgsUsage: "[pid]",
				Action: func(c *cli.Context) error {
					pid, err := pidArg(c)
					if err != nil {
						return err
					}
					return tui.Run(pid)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "pidinfo: %v\n", describe(err))
		os.Exit(1)
	}
}

// describe adds a hint for the two errnos users actually hit.
func describe(err error) error {
	switch {
	case errors.Is(err, unix.EPERM):
		return fmt.Errorf("%w (other users' processes need sudo)", err)
	case errors.Is(err, unix.ESRCH):
		return fmt.Errorf("%w (no such process)", err)
	}
	return err
}

// pidArg reads the target pid from the command line, defaulting to the
// calling process so "pidinfo fds" is self-inspection.
func pidArg(c *cli.Context) (procinfo.Pid, error) {
	arg := c.Args().First()
	if arg == "" {
		return procinfo.CurrentPid(), nil
	}
	pid, err := strconv.ParseInt(arg, 10, 32)
	if err != nil || pid < 0 {
		return 0, fmt.Errorf("invalid pid %q", arg)
	}
	return procinfo.Pid(pid), nil
}

func cmdInfo(c *cli.Context) error {
	pid, err := pidArg(c)
	if err != nil {
		return err
	}

	info, err := procinfo.PidInfo[procinfo.TaskAllInfo](pid)
	if err != nil {
		return err
	}
	if info == nil {
		return fmt.Errorf("no process info for pid %d", pid)
	}

	comm, err := info.Pbsd.Comm()
	if err != nil {
		comm = "(undecodable)"
	}
	name, err := info.Pbsd.Name()
	if err != nil {
		name = "(undecodable)"
	}

	pairs := [][2]string{
		{"Pid", fmt.Sprintf("%d", info.Pbsd.Pbi_pid)},
		{"Parent", fmt.Sprintf("%d", info.Pbsd.Pbi_ppid)},
		{"Command", render.Clean(comm)},
		{"Name", render.Clean(name)},
		{"Uid/Gid", fmt.Sprintf("%d/%d", info.Pbsd.Pbi_uid, info.Pbsd.Pbi_gid)},
		{"Files", fmt.Sprintf("%d", info.Pbsd.Pbi_nfiles)},
		{"Threads", fmt.Sprintf("%d", info.Ptinfo.Pti_threadnum)},
		{"Virtual", fmt.Sprintf("%d MB", info.Ptinfo.Pti_virtual_size/(1024*1024))},
		{"Resident", fmt.Sprintf("%d MB", info.Ptinfo.Pti_resident_size/(1024*1024))},
	}

	if path, err := procinfo.PidPath(pid); err == nil && path != "" {
		pairs = append(pairs, [2]string{"Executable", render.Clean(path)})
	}
	if usage, err := procinfo.PidRusage(pid); err == nil {
		pairs = append(pairs,
			[2]string{"Disk read", fmt.Sprintf("%d bytes", usage.Ri_diskio_bytesread)},
			[2]string{"Disk written", fmt.Sprintf("%d bytes", usage.Ri_diskio_byteswritten)},
		)
	}

	render.KV(os.Stdout, pairs)
	return nil
}

func cmdFDs(c *cli.Context) error {
	pid, err := pidArg(c)
	if err != nil {
		return err
	}
	rows, err := render.FDRows(pid)
	if err != nil {
		return err
	}
	render.Table(os.Stdout, rows)
	return nil
}

func cmdFileports(c *cli.Context) error {
	pid, err := pidArg(c)
	if err != nil {
		return err
	}
	rows, err := render.FileportRows(pid)
	if err != nil {
		return err
	}
	render.Table(os.Stdout, rows)
	return nil
}

func cmdPath(c *cli.Context) error {
	pid, err := pidArg(c)
	if err != nil {
		return err
	}
	path, err := procinfo.PidPath(pid)
	if err != nil {
		return err
	}
	fmt.Println(render.Clean(path))
	return nil
}

func cmdPS(c *cli.Context) error {
	pids, err := procinfo.ListPids()
	if err != nil {
		return err
	}
	for _, pid := range pids {
		info, err := procinfo.PidInfo[procinfo.BSDShortInfo](pid)
		if err != nil || info == nil {
			// processes may exit mid-walk, or be invisible to this uid
			continue
		}
		comm, err := info.Comm()
		if err != nil {
			comm = "(undecodable)"
		}
		fmt.Printf("%6d  %6d  %s\n", info.Pbsi_pid, info.Pbsi_ppid, render.Clean(comm))
	}
	return nil
}
