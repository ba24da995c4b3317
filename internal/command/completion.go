// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/cogctl/cogctl/internal/meta"
)

const bashCompletionScript = `# bash completion for cogctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_cogctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "uq gq create rm purge grant revoke mod ui completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--attrs -a --color -c --filter -f --local -l --output -o --sort -s --titles -t --tldr"
  local pool="--pool --region -r --profile"

    case "$cmd" in
        uq)
      local opts="$common $pool --limit"
            ;;
        gq)
      local opts="$common $pool --user -u"
            ;;
        create)
      local opts="$pool --password --group -g --tldr"
            ;;
        rm)
      local opts="$pool --exclude -x --tldr"
            ;;
        purge)
      local opts="$pool --exclude -x --yes -y --tldr"
            ;;
        grant|revoke)
      local opts="$pool --tldr"
            ;;
        mod)
      local opts="$pool --attr --password --enable --disable --reset-mfa --tldr"
            ;;
        ui)
      local opts="$pool --tldr"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

  COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
  return 0
}

complete -F _cogctl cogctl
`

const zshCompletionScript = `#compdef cogctl

_cogctl() {
  local -a cmds
  cmds=(
    'uq:user query'
    'gq:group query'
    'create:create users'
    'rm:delete named users'
    'purge:delete all users except exclusions'
    'grant:add users to a group'
    'revoke:remove users from a group'
    'mod:modify a user'
    'ui:interactive user management console'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-l --local)'{-l,--local}'[render times in local timezone]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  local -a pool
  pool=(
  '--pool[user pool id]:pool'
  '(-r --region)'{-r,--region}'[aws region]:region'
  '--profile[aws shared config profile]:profile'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'cogctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    uq)
      _arguments -C \
        $common \
        $pool \
        '--limit[limit users returned]:limit'
      ;;
    gq)
      _arguments -C \
        $common \
        $pool \
        '(-u --user)'{-u,--user}'[list groups for one user]:username'
      ;;
    create)
      _arguments -C \
        $pool \
        '--password[permanent password, - to prompt]:password' \
        '(-g --group)'{-g,--group}'[add created users to group]:group' \
        '--tldr[show tldr page]' \
        '1:count'
      ;;
    rm)
      _arguments -C \
        $pool \
        '(-x --exclude)'{-x,--exclude}'[usernames or emails to keep]:exclude' \
        '--tldr[show tldr page]' \
        '*:username'
      ;;
    purge)
      _arguments -C \
        $pool \
        '(-x --exclude)'{-x,--exclude}'[usernames or emails to keep]:exclude' \
        '(-y --yes)'{-y,--yes}'[skip the confirmation prompt]' \
        '--tldr[show tldr page]'
      ;;
    grant|revoke)
      _arguments -C \
        $pool \
        '--tldr[show tldr page]' \
        '1:group' \
        '*:username'
      ;;
    mod)
      _arguments -C \
        $pool \
        '*--attr[attribute name=value]:attr' \
        '--password[new permanent password, - to prompt]:password' \
        '--enable[enable the account]' \
        '--disable[disable the account]' \
        '--reset-mfa[reset MFA preferences]' \
        '--tldr[show tldr page]' \
        '1:username'
      ;;
    ui)
      _arguments -C \
        $pool \
        '--tldr[show tldr page]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _cogctl cogctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: cogctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "cogctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
